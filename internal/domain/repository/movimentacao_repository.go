package repository

import (
	"context"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
)

// MovimentacaoRepository define el puerto de persistencia para Movimentacao.
type MovimentacaoRepository interface {
	Create(ctx context.Context, m *entity.Movimentacao) error
	// GetAtivaByTombo devuelve el préstamo abierto (dataDevolucao NULL) del
	// tombo, o (nil, nil) si no hay ninguno.
	GetAtivaByTombo(ctx context.Context, tombo string) (*entity.Movimentacao, error)
	List(ctx context.Context) ([]*entity.Movimentacao, error)
	// RegistrarDevolucao fija la fecha de devolución de la fila indicada.
	RegistrarDevolucao(ctx context.Context, id, dataDevolucao string) error
	// ReabrirEmprestimo limpia la fecha de devolución (compensación de un
	// commit fallido de devolución).
	ReabrirEmprestimo(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
