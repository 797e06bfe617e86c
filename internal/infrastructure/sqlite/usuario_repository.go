package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre el engine embebido.
type UsuarioRepo struct {
	engine *Engine
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(engine *Engine) *UsuarioRepo {
	return &UsuarioRepo{engine: engine}
}

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, password, perfil, emailRecuperacao, tempPassword)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.engine.DB().ExecContext(ctx, query,
		u.ID, u.Email, u.Password, u.Perfil, u.EmailRecuperacao, boolToInt(u.TempPassword),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.scanOne(ctx, `WHERE id = ?`, id)
}

// GetByEmail obtiene un usuario por email/login, (nil, nil) si no existe.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.scanOne(ctx, `WHERE email = ?`, email)
}

func (r *UsuarioRepo) scanOne(ctx context.Context, where string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id, email, password, perfil, emailRecuperacao, tempPassword
		FROM usuarios ` + where
	var (
		u     entity.Usuario
		rec   sql.NullString
		tempI int
	)
	err := r.engine.DB().QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Password, &u.Perfil, &rec, &tempI,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	u.EmailRecuperacao = rec.String
	u.TempPassword = tempI == 1
	return &u, nil
}

// List devuelve todos los usuarios.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	query := `
		SELECT id, email, password, perfil, emailRecuperacao, tempPassword
		FROM usuarios ORDER BY email`
	rows, err := r.engine.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var (
			u     entity.Usuario
			rec   sql.NullString
			tempI int
		)
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.Perfil, &rec, &tempI); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		u.EmailRecuperacao = rec.String
		u.TempPassword = tempI == 1
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateSenha actualiza el hash de senha y la marca de senha temporal.
func (r *UsuarioRepo) UpdateSenha(ctx context.Context, id, senhaHash string, tempPassword bool) error {
	_, err := r.engine.DB().ExecContext(ctx,
		`UPDATE usuarios SET password = ?, tempPassword = ? WHERE id = ?`,
		senhaHash, boolToInt(tempPassword), id,
	)
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.engine.DB().ExecContext(ctx, `DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// isUniqueViolation detecta la violación de restricción UNIQUE de SQLite;
// es el respaldo de las verificaciones explícitas de los usecases.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
