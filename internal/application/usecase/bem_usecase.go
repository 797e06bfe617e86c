package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/patrimonio-api/internal/application/dto"
	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/domain/repository"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite"
)

// BemUseCase aplica reglas de negocio para bens patrimoniais.
type BemUseCase struct {
	repo    repository.BemRepository
	movRepo repository.MovimentacaoRepository
	engine  *sqlite.Engine
}

// NewBemUseCase construye el caso de uso con los puertos de persistencia.
func NewBemUseCase(repo repository.BemRepository, movRepo repository.MovimentacaoRepository, engine *sqlite.Engine) *BemUseCase {
	return &BemUseCase{repo: repo, movRepo: movRepo, engine: engine}
}

// List devuelve todos los bens.
func (uc *BemUseCase) List(ctx context.Context) ([]*dto.BemResponse, error) {
	bens, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BemResponse, 0, len(bens))
	for _, b := range bens {
		out = append(out, toBemResponse(b))
	}
	return out, nil
}

// Create registra un bem nuevo. El número de tombo debe ser único.
func (uc *BemUseCase) Create(ctx context.Context, in dto.CreateBemRequest) (*dto.BemResponse, error) {
	var out *dto.BemResponse
	err := uc.engine.Exclusive(func() error {
		existente, err := uc.repo.GetByTombo(ctx, in.Tombo)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrTomboDuplicado
		}

		b := &entity.Bem{
			ID:          uuid.NewString(),
			Tombo:       in.Tombo,
			Nome:        in.Nome,
			Categoria:   in.Categoria,
			Localizacao: in.Localizacao,
			Sala:        in.Sala,
			ImagemTombo: in.ImagemTombo,
			FotoBem:     in.FotoBem,
		}
		if err := uc.repo.Create(ctx, b); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.Delete(ctx, b.ID)
			return domain.ErrPersistencia
		}
		out = toBemResponse(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update edita un bem existente. Si el snapshot falla se restaura la imagen
// anterior de la fila.
func (uc *BemUseCase) Update(ctx context.Context, id string, in dto.UpdateBemRequest) (*dto.BemResponse, error) {
	var out *dto.BemResponse
	err := uc.engine.Exclusive(func() error {
		anterior, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if anterior == nil {
			return domain.ErrBemNaoEncontrado
		}
		if in.Tombo != anterior.Tombo {
			otro, err := uc.repo.GetByTombo(ctx, in.Tombo)
			if err != nil {
				return err
			}
			if otro != nil {
				return domain.ErrTomboDuplicado
			}
		}

		b := &entity.Bem{
			ID:          id,
			Tombo:       in.Tombo,
			Nome:        in.Nome,
			Categoria:   in.Categoria,
			Localizacao: in.Localizacao,
			Sala:        in.Sala,
			ImagemTombo: in.ImagemTombo,
			FotoBem:     in.FotoBem,
		}
		if err := uc.repo.Update(ctx, b); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.Update(ctx, anterior)
			return domain.ErrPersistencia
		}
		out = toBemResponse(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un bem. Un bem con préstamo activo no puede eliminarse.
func (uc *BemUseCase) Delete(ctx context.Context, id string) error {
	return uc.engine.Exclusive(func() error {
		bem, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if bem == nil {
			return domain.ErrBemNaoEncontrado
		}

		ativa, err := uc.movRepo.GetAtivaByTombo(ctx, bem.Tombo)
		if err != nil {
			return err
		}
		if ativa != nil {
			return domain.ErrBemEmprestado
		}

		if err := uc.repo.Delete(ctx, id); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.Create(ctx, bem)
			return domain.ErrPersistencia
		}
		return nil
	})
}

func toBemResponse(b *entity.Bem) *dto.BemResponse {
	if b == nil {
		return nil
	}
	return &dto.BemResponse{
		ID:          b.ID,
		Tombo:       b.Tombo,
		Nome:        b.Nome,
		Categoria:   b.Categoria,
		Localizacao: b.Localizacao,
		Sala:        b.Sala,
		ImagemTombo: b.ImagemTombo,
		FotoBem:     b.FotoBem,
	}
}
