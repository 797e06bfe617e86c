// Package auth implementa autenticación, recuperación y cambio de senha
// sobre el engine embebido.
package auth

import (
	"context"

	"github.com/tu-usuario/patrimonio-api/internal/application/dto"
	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/domain/repository"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite"
	"github.com/tu-usuario/patrimonio-api/pkg/jwt"
	"github.com/tu-usuario/patrimonio-api/pkg/logger"
	"github.com/tu-usuario/patrimonio-api/pkg/senha"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, recuperar y alterar senha.
type AuthUseCase struct {
	repo   repository.UsuarioRepository
	engine *sqlite.Engine
	hasher *senha.Hasher
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo repository.UsuarioRepository, engine *sqlite.Engine, hasher *senha.Hasher, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{repo: repo, engine: engine, hasher: hasher, jwtCfg: jwtCfg, log: log}
}

// Login verifica email/senha y genera el JWT. Si la senha guardada estaba en
// texto plano (fila legada) y la verificación fue exitosa, la migra a hash
// en ese momento: las cuentas antiguas se convierten al formato seguro en su
// primer login, sin pasada de migración masiva.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if !uc.hasher.Comparar(in.Password, user.Password) {
		return nil, domain.ErrCredenciaisInvalidas
	}

	if !senha.EhHash(user.Password) {
		uc.rehashLegado(ctx, user, in.Password)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Perfil, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *toUsuarioResponse(user)}, nil
}

// rehashLegado migra una senha en texto plano a bcrypt. Es oportunista: si
// el snapshot falla se revierte la fila y el login sigue adelante (la
// próxima autenticación volverá a intentarlo).
func (uc *AuthUseCase) rehashLegado(ctx context.Context, user *entity.Usuario, plano string) {
	_ = uc.engine.Exclusive(func() error {
		anterior := user.Password
		novoHash := uc.hasher.Hash(plano)
		if err := uc.repo.UpdateSenha(ctx, user.ID, novoHash, user.TempPassword); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.UpdateSenha(ctx, user.ID, anterior, user.TempPassword)
			uc.log.Warn().Str("usuario", user.ID).Msg("rehash de senha legada sin snapshot durable, se reintentará")
			return domain.ErrPersistencia
		}
		uc.log.Info().Str("usuario", user.ID).Msg("senha legada migrada a formato hasheado")
		user.Password = novoHash
		return nil
	})
}

// RecuperarSenha valida el e-mail de recuperación y emite una senha temporal
// de 6 caracteres. La devuelve en texto plano una única vez; en el almacén
// queda solo el hash con la marca tempPassword activa.
func (uc *AuthUseCase) RecuperarSenha(ctx context.Context, in dto.RecuperarSenhaRequest) (*dto.RecuperarSenhaResponse, error) {
	var out *dto.RecuperarSenhaResponse
	err := uc.engine.Exclusive(func() error {
		user, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUsuarioNaoEncontrado
		}
		if user.EmailRecuperacao != in.EmailRecuperacao {
			return domain.ErrEmailRecuperacao
		}

		temporaria, err := senha.GerarTemporaria()
		if err != nil {
			return err
		}
		if err := uc.repo.UpdateSenha(ctx, user.ID, uc.hasher.Hash(temporaria), true); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.UpdateSenha(ctx, user.ID, user.Password, user.TempPassword)
			return domain.ErrPersistencia
		}
		out = &dto.RecuperarSenhaResponse{SenhaTemporaria: temporaria}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AlterarSenha fija una senha definitiva y limpia la marca de senha temporal.
func (uc *AuthUseCase) AlterarSenha(ctx context.Context, userID string, in dto.AlterarSenhaRequest) error {
	return uc.engine.Exclusive(func() error {
		user, err := uc.repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUsuarioNaoEncontrado
		}
		if err := uc.repo.UpdateSenha(ctx, user.ID, uc.hasher.Hash(in.NovaSenha), false); err != nil {
			return err
		}
		if !uc.engine.Commit(ctx) {
			_ = uc.repo.UpdateSenha(ctx, user.ID, user.Password, user.TempPassword)
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
