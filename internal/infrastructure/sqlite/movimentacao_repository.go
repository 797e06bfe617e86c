package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementación del puerto MovimentacaoRepository sobre el engine embebido.
type MovimentacaoRepo struct {
	engine *Engine
}

// NewMovimentacaoRepository construye el adaptador de persistencia para movimentações.
func NewMovimentacaoRepository(engine *Engine) *MovimentacaoRepo {
	return &MovimentacaoRepo{engine: engine}
}

// Create inserta una movimentação. DataDevolucao vacía se guarda como NULL:
// es lo que marca el préstamo como activo.
func (r *MovimentacaoRepo) Create(ctx context.Context, m *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (id, tombo, nomeItem, pessoa, contato, pastoral, tipo, dataEmprestimo, dataDevolucao)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.engine.DB().ExecContext(ctx, query,
		m.ID, m.Tombo, m.NomeItem, m.Pessoa, m.Contato, m.Pastoral, m.Tipo,
		m.DataEmprestimo, nullIfEmpty(m.DataDevolucao),
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetAtivaByTombo devuelve el préstamo abierto del tombo, (nil, nil) si no hay.
func (r *MovimentacaoRepo) GetAtivaByTombo(ctx context.Context, tombo string) (*entity.Movimentacao, error) {
	query := `
		SELECT id, tombo, nomeItem, pessoa, contato, pastoral, tipo, dataEmprestimo, dataDevolucao
		FROM movimentacoes WHERE tombo = ? AND dataDevolucao IS NULL`
	var (
		m   entity.Movimentacao
		dev sql.NullString
	)
	err := r.engine.DB().QueryRowContext(ctx, query, tombo).Scan(
		&m.ID, &m.Tombo, &m.NomeItem, &m.Pessoa, &m.Contato, &m.Pastoral, &m.Tipo,
		&m.DataEmprestimo, &dev,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao ativa: %w", err)
	}
	m.DataDevolucao = dev.String
	return &m, nil
}

// List devuelve todas las movimentações, las más recientes primero.
func (r *MovimentacaoRepo) List(ctx context.Context) ([]*entity.Movimentacao, error) {
	query := `
		SELECT id, tombo, nomeItem, pessoa, contato, pastoral, tipo, dataEmprestimo, dataDevolucao
		FROM movimentacoes ORDER BY dataEmprestimo DESC`
	rows, err := r.engine.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var (
			m   entity.Movimentacao
			dev sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Tombo, &m.NomeItem, &m.Pessoa, &m.Contato, &m.Pastoral, &m.Tipo, &m.DataEmprestimo, &dev); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		m.DataDevolucao = dev.String
		list = append(list, &m)
	}
	return list, rows.Err()
}

// RegistrarDevolucao fija la fecha de devolución del préstamo indicado.
func (r *MovimentacaoRepo) RegistrarDevolucao(ctx context.Context, id, dataDevolucao string) error {
	_, err := r.engine.DB().ExecContext(ctx,
		`UPDATE movimentacoes SET dataDevolucao = ? WHERE id = ?`, dataDevolucao, id)
	if err != nil {
		return fmt.Errorf("registrar devolucao: %w", err)
	}
	return nil
}

// ReabrirEmprestimo limpia la fecha de devolución (compensación).
func (r *MovimentacaoRepo) ReabrirEmprestimo(ctx context.Context, id string) error {
	_, err := r.engine.DB().ExecContext(ctx,
		`UPDATE movimentacoes SET dataDevolucao = NULL WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("reabrir emprestimo: %w", err)
	}
	return nil
}

// Delete elimina una movimentação por ID (solo compensación, no flujo normal).
func (r *MovimentacaoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.engine.DB().ExecContext(ctx, `DELETE FROM movimentacoes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete movimentacao: %w", err)
	}
	return nil
}
