package repository

import (
	"context"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los métodos Get devuelven (nil, nil) cuando no hay fila.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	List(ctx context.Context) ([]*entity.Usuario, error)
	UpdateSenha(ctx context.Context, id, senhaHash string, tempPassword bool) error
	Delete(ctx context.Context, id string) error
}
