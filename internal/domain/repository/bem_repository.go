package repository

import (
	"context"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
)

// BemRepository define el puerto de persistencia para Bem.
type BemRepository interface {
	Create(ctx context.Context, b *entity.Bem) error
	GetByID(ctx context.Context, id string) (*entity.Bem, error)
	GetByTombo(ctx context.Context, tombo string) (*entity.Bem, error)
	List(ctx context.Context) ([]*entity.Bem, error)
	Update(ctx context.Context, b *entity.Bem) error
	Delete(ctx context.Context, id string) error
}
