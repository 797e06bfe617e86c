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

// UsuarioUseCase aplica reglas de negocio para cuentas de usuario.
type UsuarioUseCase struct {
	repo   repository.UsuarioRepository
	engine *sqlite.Engine
	hasher Hasher
}

// Hasher es el subconjunto de pkg/senha que los usecases necesitan.
type Hasher interface {
	Hash(plano string) string
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
func NewUsuarioUseCase(repo repository.UsuarioRepository, engine *sqlite.Engine, hasher Hasher) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, engine: engine, hasher: hasher}
}

// List devuelve todos los usuarios, sin hashes.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// Create registra un usuario nuevo. Falla con ErrEmailJaExiste si el login
// está tomado; si el snapshot durable falla la inserción se revierte.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	var out *dto.UsuarioResponse
	err := uc.engine.Exclusive(func() error {
		existente, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrEmailJaExiste
		}

		u := &entity.Usuario{
			ID:               uuid.NewString(),
			Email:            in.Email,
			Password:         uc.hasher.Hash(in.Password),
			Perfil:           in.Perfil,
			EmailRecuperacao: in.EmailRecuperacao,
			TempPassword:     false,
		}
		if err := uc.repo.Create(ctx, u); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.Delete(ctx, u.ID)
			return domain.ErrPersistencia
		}
		out = toUsuarioResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un usuario. El administrador por defecto es indelable:
// garantiza que siempre exista al menos esa cuenta.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id string) error {
	return uc.engine.Exclusive(func() error {
		user, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUsuarioNaoEncontrado
		}
		if user.Email == entity.AdminEmail {
			return domain.ErrContaProtegida
		}

		if err := uc.repo.Delete(ctx, id); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.Create(ctx, user)
			return domain.ErrPersistencia
		}
		return nil
	})
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:               u.ID,
		Email:            u.Email,
		Perfil:           u.Perfil,
		EmailRecuperacao: u.EmailRecuperacao,
		TempPassword:     u.TempPassword,
	}
}
