package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/pkg/logger"
	"github.com/tu-usuario/patrimonio-api/pkg/senha"
)

// Engine envuelve la instancia relacional viva de la sesión. La base opera
// sobre un archivo temporal propio; el estado durable vive únicamente en el
// ByteStore como snapshot del último Commit exitoso.
type Engine struct {
	db       *sql.DB
	store    ByteStore
	log      *logger.Logger
	livePath string

	// mu serializa las operaciones mutantes completas (ver Exclusive):
	// sin él, dos secuencias check-then-act concurrentes podrían violar
	// invariantes como "un préstamo activo por tombo".
	mu sync.Mutex
}

// NewEngine restaura la base desde el byte store (o crea una nueva si no hay
// snapshot o está ilegible), aplica las migraciones y siembra el admin por
// defecto. Un fallo aquí es fatal: el caller solo puede reintentar el proceso.
func NewEngine(ctx context.Context, store ByteStore, hasher *senha.Hasher, log *logger.Logger) (*Engine, error) {
	if log == nil {
		log = logger.Nop()
	}

	tmp, err := os.CreateTemp("", "patrimonio-live-*.db")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEngineIndisponivel, err)
	}
	livePath := tmp.Name()

	restaurado := false
	if data, ok := store.Load(); ok {
		if _, err := tmp.Write(data); err != nil {
			_ = tmp.Close()
			_ = os.Remove(livePath)
			return nil, fmt.Errorf("%w: restaurar snapshot: %v", domain.ErrEngineIndisponivel, err)
		}
		restaurado = true
	} else {
		log.Warn().Msg("sin snapshot durable, arrancando con base vacía")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(livePath)
		return nil, fmt.Errorf("%w: %v", domain.ErrEngineIndisponivel, err)
	}

	e := &Engine{store: store, log: log, livePath: livePath}
	if err := e.abrir(); err != nil {
		_ = os.Remove(livePath)
		return nil, err
	}

	if err := e.migrar(ctx); err != nil {
		if !restaurado {
			_ = e.db.Close()
			_ = os.Remove(livePath)
			return nil, fmt.Errorf("%w: migrar: %v", domain.ErrEngineIndisponivel, err)
		}
		// Snapshot restaurado pero inmigrable: se asume corrupto y se
		// arranca vacío en lugar de negarse a iniciar.
		log.Warn().Err(err).Msg("snapshot durable corrupto, arrancando con base nueva")
		_ = e.db.Close()
		if err := os.Truncate(livePath, 0); err != nil {
			_ = os.Remove(livePath)
			return nil, fmt.Errorf("%w: %v", domain.ErrEngineIndisponivel, err)
		}
		if err := e.abrir(); err != nil {
			_ = os.Remove(livePath)
			return nil, err
		}
		if err := e.migrar(ctx); err != nil {
			_ = e.db.Close()
			_ = os.Remove(livePath)
			return nil, fmt.Errorf("%w: migrar: %v", domain.ErrEngineIndisponivel, err)
		}
	}

	if err := e.seedAdmin(ctx, hasher); err != nil {
		_ = e.db.Close()
		_ = os.Remove(livePath)
		return nil, fmt.Errorf("%w: seed admin: %v", domain.ErrEngineIndisponivel, err)
	}

	return e, nil
}

func (e *Engine) abrir() error {
	db, err := sql.Open("sqlite", e.livePath)
	if err != nil {
		return fmt.Errorf("%w: abrir base viva: %v", domain.ErrEngineIndisponivel, err)
	}
	// Una sola conexión: el engine ya serializa toda mutación y evita así
	// los bloqueos de escritor de SQLite entre conexiones.
	db.SetMaxOpenConns(1)
	e.db = db
	return nil
}

// DB expone la conexión viva a los repositorios.
func (e *Engine) DB() *sql.DB {
	return e.db
}

// Exclusive ejecuta fn con el engine tomado en exclusiva. Toda operación
// mutante de los usecases corre completa aquí dentro, de la validación al
// commit-o-compensación.
func (e *Engine) Exclusive(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn()
}

// Commit serializa la base viva completa y la guarda en el byte store.
// Nunca lanza: devuelve false ante cualquier fallo y deja al caller decidir
// (los usecases compensan la mutación en memoria y reportan ErrPersistencia).
func (e *Engine) Commit(ctx context.Context) bool {
	data, err := e.exportar(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("error exportando la base para el snapshot")
		return false
	}
	if err := e.store.Save(data); err != nil {
		e.log.Error().Err(err).Msg("error guardando el snapshot en el byte store")
		return false
	}
	return true
}

// exportar produce los bytes del snapshot consistente vía VACUUM INTO.
func (e *Engine) exportar(ctx context.Context) ([]byte, error) {
	snap := e.livePath + ".snap"
	// VACUUM INTO exige que el destino no exista.
	_ = os.Remove(snap)
	if _, err := e.db.ExecContext(ctx, fmt.Sprintf("VACUUM INTO '%s'", snap)); err != nil {
		return nil, fmt.Errorf("vacuum into: %w", err)
	}
	defer func() { _ = os.Remove(snap) }()
	data, err := os.ReadFile(snap)
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return data, nil
}

// Close cierra la base viva y elimina el archivo temporal de la sesión.
func (e *Engine) Close() error {
	err := e.db.Close()
	_ = os.Remove(e.livePath)
	return err
}
