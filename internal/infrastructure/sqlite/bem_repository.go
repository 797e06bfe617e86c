package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/domain/repository"
)

var _ repository.BemRepository = (*BemRepo)(nil)

// BemRepo implementación del puerto BemRepository sobre el engine embebido.
type BemRepo struct {
	engine *Engine
}

// NewBemRepository construye el adaptador de persistencia para bens.
func NewBemRepository(engine *Engine) *BemRepo {
	return &BemRepo{engine: engine}
}

// Create persiste un nuevo bem.
func (r *BemRepo) Create(ctx context.Context, b *entity.Bem) error {
	query := `
		INSERT INTO bens (id, tombo, nome, categoria, localizacao, sala, imagemTombo, fotoBem)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.engine.DB().ExecContext(ctx, query,
		b.ID, b.Tombo, b.Nome, b.Categoria, b.Localizacao, b.Sala,
		nullIfEmpty(b.ImagemTombo), nullIfEmpty(b.FotoBem),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTomboDuplicado
		}
		return fmt.Errorf("insert bem: %w", err)
	}
	return nil
}

// GetByID obtiene un bem por ID, (nil, nil) si no existe.
func (r *BemRepo) GetByID(ctx context.Context, id string) (*entity.Bem, error) {
	return r.scanOne(ctx, `WHERE id = ?`, id)
}

// GetByTombo obtiene un bem por número de tombo, (nil, nil) si no existe.
func (r *BemRepo) GetByTombo(ctx context.Context, tombo string) (*entity.Bem, error) {
	return r.scanOne(ctx, `WHERE tombo = ?`, tombo)
}

func (r *BemRepo) scanOne(ctx context.Context, where string, arg any) (*entity.Bem, error) {
	query := `
		SELECT id, tombo, nome, categoria, localizacao, sala, imagemTombo, fotoBem
		FROM bens ` + where
	var (
		b            entity.Bem
		imagem, foto sql.NullString
	)
	err := r.engine.DB().QueryRowContext(ctx, query, arg).Scan(
		&b.ID, &b.Tombo, &b.Nome, &b.Categoria, &b.Localizacao, &b.Sala, &imagem, &foto,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bem: %w", err)
	}
	b.ImagemTombo = imagem.String
	b.FotoBem = foto.String
	return &b, nil
}

// List devuelve todos los bens.
func (r *BemRepo) List(ctx context.Context) ([]*entity.Bem, error) {
	query := `
		SELECT id, tombo, nome, categoria, localizacao, sala, imagemTombo, fotoBem
		FROM bens ORDER BY tombo`
	rows, err := r.engine.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bens: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bem
	for rows.Next() {
		var (
			b            entity.Bem
			imagem, foto sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Tombo, &b.Nome, &b.Categoria, &b.Localizacao, &b.Sala, &imagem, &foto); err != nil {
			return nil, fmt.Errorf("scan bem: %w", err)
		}
		b.ImagemTombo = imagem.String
		b.FotoBem = foto.String
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos editables de un bem.
func (r *BemRepo) Update(ctx context.Context, b *entity.Bem) error {
	query := `
		UPDATE bens SET tombo = ?, nome = ?, categoria = ?, localizacao = ?, sala = ?,
			imagemTombo = ?, fotoBem = ?
		WHERE id = ?`
	_, err := r.engine.DB().ExecContext(ctx, query,
		b.Tombo, b.Nome, b.Categoria, b.Localizacao, b.Sala,
		nullIfEmpty(b.ImagemTombo), nullIfEmpty(b.FotoBem), b.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTomboDuplicado
		}
		return fmt.Errorf("update bem: %w", err)
	}
	return nil
}

// Delete elimina un bem por ID.
func (r *BemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.engine.DB().ExecContext(ctx, `DELETE FROM bens WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete bem: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
