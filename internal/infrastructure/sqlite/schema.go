package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite/migrations"
	"github.com/tu-usuario/patrimonio-api/pkg/senha"
)

// migrar aplica las migraciones embebidas en orden. goose registra la
// versión en la propia base (tabla goose_db_version), así que aplicar dos
// veces es un no-op: no hay "ALTER y tragar el error de columna duplicada".
func (e *Engine) migrar(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("dialecto goose: %w", err)
	}
	return goose.UpContext(ctx, e.db, ".")
}

// seedAdmin garantiza la cuenta de administrador por defecto. Solo inserta
// si el login reservado no existe; el commit del seed se intenta pero su
// fallo no impide el arranque (quedará pendiente para el próximo Commit).
func (e *Engine) seedAdmin(ctx context.Context, hasher *senha.Hasher) error {
	var n int
	err := e.db.QueryRowContext(ctx,
		`SELECT count(*) FROM usuarios WHERE email = ?`, entity.AdminEmail).Scan(&n)
	if err != nil {
		return fmt.Errorf("verificar admin: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = e.db.ExecContext(ctx,
		`INSERT INTO usuarios (id, email, password, perfil, emailRecuperacao, tempPassword)
		 VALUES (?, ?, ?, ?, ?, 0)`,
		uuid.NewString(), entity.AdminEmail, hasher.Hash(entity.AdminSenhaPadrao),
		entity.PerfilAdmin, entity.AdminEmailRecuperacao)
	if err != nil {
		return fmt.Errorf("insertar admin: %w", err)
	}

	if !e.Commit(ctx) {
		e.log.Warn().Msg("seed del admin sin snapshot durable, se persistirá en el próximo commit")
	}
	e.log.Info().Str("email", entity.AdminEmail).Msg("admin por defecto creado")
	return nil
}
