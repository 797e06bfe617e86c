package sqlite_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite"
	"github.com/tu-usuario/patrimonio-api/pkg/logger"
	"github.com/tu-usuario/patrimonio-api/pkg/senha"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memStore implementa ByteStore en memoria. failSave simula un área durable
// que rechaza la escritura (disco lleno, permiso revocado, etc).
type memStore struct {
	mu       sync.Mutex
	data     []byte
	has      bool
	failSave bool
	saves    int
}

func (s *memStore) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("byte store no disponible")
	}
	s.data = append([]byte(nil), data...)
	s.has = true
	s.saves++
	return nil
}

func (s *memStore) Load() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.has {
		return nil, false
	}
	return append([]byte(nil), s.data...), true
}

func newTestEngine(t *testing.T, store sqlite.ByteStore) *sqlite.Engine {
	t.Helper()
	hasher := senha.NewHasher(logger.Nop())
	engine, err := sqlite.NewEngine(context.Background(), store, hasher, logger.Nop())
	require.NoError(t, err, "el engine debe inicializar")
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func contarUsuarios(t *testing.T, engine *sqlite.Engine, email string) int {
	t.Helper()
	var n int
	err := engine.DB().QueryRow(`SELECT COUNT(*) FROM usuarios WHERE email = ?`, email).Scan(&n)
	require.NoError(t, err)
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicialización y seed
// ──────────────────────────────────────────────────────────────────────────────

// Primer arranque, sin snapshot: base vacía migrada + admin sembrado.
func TestNewEngine_BaseVacia_SiembraAdmin(t *testing.T) {
	store := &memStore{}
	engine := newTestEngine(t, store)

	assert.Equal(t, 1, contarUsuarios(t, engine, entity.AdminEmail),
		"debe existir exactamente un admin por defecto")

	repo := sqlite.NewUsuarioRepository(engine)
	admin, err := repo.GetByEmail(context.Background(), entity.AdminEmail)
	require.NoError(t, err)
	require.NotNil(t, admin)

	assert.Equal(t, entity.PerfilAdmin, admin.Perfil)
	assert.Equal(t, entity.AdminEmailRecuperacao, admin.EmailRecuperacao)
	assert.False(t, admin.TempPassword)
	assert.True(t, strings.HasPrefix(admin.Password, "$2"),
		"la senha del admin debe sembrarse ya hasheada, nunca en texto plano")

	// El seed intenta persistir el estado inicial.
	assert.True(t, store.has, "tras el seed debe existir un snapshot durable")
}

// Reabrir desde el snapshot: los datos sobreviven y el seed no duplica el admin.
func TestNewEngine_ReabreDesdeSnapshot(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	engine1 := newTestEngine(t, store)
	bemRepo := sqlite.NewBemRepository(engine1)
	require.NoError(t, bemRepo.Create(ctx, &entity.Bem{
		ID:    "bem-1",
		Tombo: "1001",
		Nome:  "Projetor Epson",
	}))
	require.True(t, engine1.Commit(ctx), "el commit debe persistir en el store")
	require.NoError(t, engine1.Close())

	engine2 := newTestEngine(t, store)
	bem, err := sqlite.NewBemRepository(engine2).GetByTombo(ctx, "1001")
	require.NoError(t, err)
	require.NotNil(t, bem, "el bem debe sobrevivir al reinicio")
	assert.Equal(t, "Projetor Epson", bem.Nome)

	assert.Equal(t, 1, contarUsuarios(t, engine2, entity.AdminEmail),
		"reabrir no debe duplicar el admin ni re-aplicar migraciones")
}

// Snapshot ilegible: se prefiere arrancar vacío a negarse a iniciar.
func TestNewEngine_SnapshotCorrupto_ArrancaVacio(t *testing.T) {
	store := &memStore{data: []byte("esto no es una base sqlite"), has: true}
	engine := newTestEngine(t, store)

	var n int
	require.NoError(t, engine.DB().QueryRow(`SELECT COUNT(*) FROM bens`).Scan(&n))
	assert.Zero(t, n, "la base debe arrancar vacía")
	assert.Equal(t, 1, contarUsuarios(t, engine, entity.AdminEmail))
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit
// ──────────────────────────────────────────────────────────────────────────────

func TestEngine_Commit_GuardaSnapshot(t *testing.T) {
	store := &memStore{}
	engine := newTestEngine(t, store)

	saves := store.saves
	assert.True(t, engine.Commit(context.Background()))
	assert.Equal(t, saves+1, store.saves, "cada commit debe escribir un snapshot nuevo")
	assert.NotEmpty(t, store.data)
}

// El fallo de Save se reporta como false, nunca como pánico ni error.
func TestEngine_Commit_FalloDelStore_DevuelveFalse(t *testing.T) {
	store := &memStore{}
	engine := newTestEngine(t, store)

	store.mu.Lock()
	store.failSave = true
	store.mu.Unlock()

	assert.False(t, engine.Commit(context.Background()),
		"un store que rechaza la escritura debe reportar commit fallido")
}

// El snapshot es la base completa: un segundo engine restaurado desde los
// bytes del commit ve las mismas filas.
func TestEngine_Commit_SnapshotEsBaseCompleta(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	engine1 := newTestEngine(t, store)
	movRepo := sqlite.NewMovimentacaoRepository(engine1)
	require.NoError(t, movRepo.Create(ctx, &entity.Movimentacao{
		ID:             "mov-1",
		Tombo:          "1001",
		NomeItem:       "Projetor Epson",
		Pessoa:         "Maria",
		Tipo:           entity.TipoEmprestimo,
		DataEmprestimo: "2026-08-30",
	}))
	require.True(t, engine1.Commit(ctx))
	require.NoError(t, engine1.Close())

	engine2 := newTestEngine(t, store)
	ativa, err := sqlite.NewMovimentacaoRepository(engine2).GetAtivaByTombo(ctx, "1001")
	require.NoError(t, err)
	require.NotNil(t, ativa)
	assert.Equal(t, "Maria", ativa.Pessoa)
}
