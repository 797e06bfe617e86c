package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite"
)

func TestUsuarioRepo_CRUD(t *testing.T) {
	engine := newTestEngine(t, &memStore{})
	repo := sqlite.NewUsuarioRepository(engine)
	ctx := context.Background()

	u := &entity.Usuario{
		ID:               "user-1",
		Email:            "joao@email.com",
		Password:         "$2a$10$hashfalso",
		Perfil:           entity.PerfilUser,
		EmailRecuperacao: "joao.rec@email.com",
	}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByEmail(ctx, "joao@email.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.EmailRecuperacao, got.EmailRecuperacao)
	assert.False(t, got.TempPassword)

	// Email único: segunda inserción con el mismo login falla.
	dup := &entity.Usuario{ID: "user-2", Email: "joao@email.com", Password: "x", Perfil: entity.PerfilUser}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailJaExiste)

	// UpdateSenha cambia hash y marca temporal juntos.
	require.NoError(t, repo.UpdateSenha(ctx, u.ID, "$2a$10$outrohash", true))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$outrohash", got.Password)
	assert.True(t, got.TempPassword)

	require.NoError(t, repo.Delete(ctx, u.ID))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "usuario eliminado debe resolver como (nil, nil)")
}

func TestBemRepo_ColumnasOpcionalesNulas(t *testing.T) {
	engine := newTestEngine(t, &memStore{})
	repo := sqlite.NewBemRepository(engine)
	ctx := context.Background()

	// Solo los campos obligatorios: el resto debe ir y volver como vacío.
	require.NoError(t, repo.Create(ctx, &entity.Bem{ID: "bem-1", Tombo: "2001", Nome: "Cadeira"}))

	got, err := repo.GetByTombo(ctx, "2001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Categoria)
	assert.Empty(t, got.Localizacao)
	assert.Empty(t, got.Sala)
	assert.Empty(t, got.ImagemTombo)
	assert.Empty(t, got.FotoBem)

	// Tombo único.
	err = repo.Create(ctx, &entity.Bem{ID: "bem-2", Tombo: "2001", Nome: "Mesa"})
	assert.ErrorIs(t, err, domain.ErrTomboDuplicado)
}

func TestBemRepo_Update(t *testing.T) {
	engine := newTestEngine(t, &memStore{})
	repo := sqlite.NewBemRepository(engine)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Bem{ID: "bem-1", Tombo: "2001", Nome: "Cadeira"}))
	require.NoError(t, repo.Update(ctx, &entity.Bem{
		ID: "bem-1", Tombo: "2002", Nome: "Cadeira Gamer", Sala: "Sala 3",
	}))

	got, err := repo.GetByID(ctx, "bem-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2002", got.Tombo)
	assert.Equal(t, "Cadeira Gamer", got.Nome)
	assert.Equal(t, "Sala 3", got.Sala)

	viejo, err := repo.GetByTombo(ctx, "2001")
	require.NoError(t, err)
	assert.Nil(t, viejo, "el tombo anterior no debe seguir resolviendo")
}

func TestMovimentacaoRepo_CicloEmprestimoDevolucao(t *testing.T) {
	engine := newTestEngine(t, &memStore{})
	repo := sqlite.NewMovimentacaoRepository(engine)
	ctx := context.Background()

	m := &entity.Movimentacao{
		ID:             "mov-1",
		Tombo:          "3001",
		NomeItem:       "Caixa de som",
		Pessoa:         "Pedro",
		Tipo:           entity.TipoEmprestimo,
		DataEmprestimo: "2026-08-01",
	}
	require.NoError(t, repo.Create(ctx, m))

	// DataDevolucao vacía → NULL → préstamo activo.
	ativa, err := repo.GetAtivaByTombo(ctx, "3001")
	require.NoError(t, err)
	require.NotNil(t, ativa)
	assert.Equal(t, "mov-1", ativa.ID)
	assert.True(t, ativa.Ativa())

	require.NoError(t, repo.RegistrarDevolucao(ctx, "mov-1", "2026-08-15"))
	ativa, err = repo.GetAtivaByTombo(ctx, "3001")
	require.NoError(t, err)
	assert.Nil(t, ativa, "tras la devolución no debe haber préstamo activo")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "la devolución cierra la misma fila, no crea otra")
	assert.Equal(t, "2026-08-15", list[0].DataDevolucao)
	assert.False(t, list[0].Ativa())

	// Compensación: reabrir restaura el estado activo.
	require.NoError(t, repo.ReabrirEmprestimo(ctx, "mov-1"))
	ativa, err = repo.GetAtivaByTombo(ctx, "3001")
	require.NoError(t, err)
	require.NotNil(t, ativa)
	assert.Empty(t, ativa.DataDevolucao)
}
