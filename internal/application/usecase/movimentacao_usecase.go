package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/patrimonio-api/internal/application/dto"
	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/domain/repository"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite"
)

// MovimentacaoUseCase aplica las reglas de préstamo y devolución.
// Invariante central: a lo sumo un préstamo activo por tombo.
type MovimentacaoUseCase struct {
	repo    repository.MovimentacaoRepository
	bemRepo repository.BemRepository
	engine  *sqlite.Engine
}

// NewMovimentacaoUseCase construye el caso de uso con los puertos de persistencia.
func NewMovimentacaoUseCase(repo repository.MovimentacaoRepository, bemRepo repository.BemRepository, engine *sqlite.Engine) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{repo: repo, bemRepo: bemRepo, engine: engine}
}

// List devuelve todas las movimentações.
func (uc *MovimentacaoUseCase) List(ctx context.Context) ([]*dto.MovimentacaoResponse, error) {
	movs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimentacaoResponse(m))
	}
	return out, nil
}

// Registrar procesa un préstamo o una devolución. La secuencia completa
// (resolver bem, verificar préstamo activo, mutar, commit) corre en
// exclusiva sobre el engine.
func (uc *MovimentacaoUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	var out *dto.MovimentacaoResponse
	err := uc.engine.Exclusive(func() error {
		bem, err := uc.bemRepo.GetByTombo(ctx, in.Tombo)
		if err != nil {
			return err
		}
		if bem == nil {
			return domain.ErrBemNaoEncontrado
		}

		ativa, err := uc.repo.GetAtivaByTombo(ctx, in.Tombo)
		if err != nil {
			return err
		}

		if in.Tipo == entity.TipoDevolucao {
			out, err = uc.registrarDevolucao(ctx, in, ativa)
			return err
		}
		out, err = uc.registrarEmprestimo(ctx, in, bem, ativa)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// registrarEmprestimo inserta un registro nuevo con fecha de devolución nula.
func (uc *MovimentacaoUseCase) registrarEmprestimo(ctx context.Context, in dto.RegistrarMovimentacaoRequest, bem *entity.Bem, ativa *entity.Movimentacao) (*dto.MovimentacaoResponse, error) {
	if ativa != nil {
		return nil, domain.ErrJaEmprestado
	}

	dataEmp := in.DataEmprestimo
	if dataEmp == "" {
		dataEmp = hoje()
	}
	m := &entity.Movimentacao{
		ID:             uuid.NewString(),
		Tombo:          bem.Tombo,
		NomeItem:       bem.Nome, // copia desnormalizada resuelta del bem, no del request
		Pessoa:         in.Pessoa,
		Contato:        in.Contato,
		Pastoral:       in.Pastoral,
		Tipo:           entity.TipoEmprestimo,
		DataEmprestimo: dataEmp,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	if !uc.engine.Commit(ctx) {
		_ = uc.repo.Delete(ctx, m.ID)
		return nil, domain.ErrPersistencia
	}
	return toMovimentacaoResponse(m), nil
}

// registrarDevolucao cierra el préstamo activo actualizando su misma fila:
// préstamo y devolución son un único ciclo de vida, un único registro.
func (uc *MovimentacaoUseCase) registrarDevolucao(ctx context.Context, in dto.RegistrarMovimentacaoRequest, ativa *entity.Movimentacao) (*dto.MovimentacaoResponse, error) {
	if ativa == nil {
		return nil, domain.ErrSemEmprestimoAtivo
	}

	dataDev := in.DataDevolucao
	if dataDev == "" {
		dataDev = hoje()
	}
	if err := uc.repo.RegistrarDevolucao(ctx, ativa.ID, dataDev); err != nil {
		return nil, err
	}
	if !uc.engine.Commit(ctx) {
		_ = uc.repo.ReabrirEmprestimo(ctx, ativa.ID)
		return nil, domain.ErrPersistencia
	}
	ativa.DataDevolucao = dataDev
	return toMovimentacaoResponse(ativa), nil
}

func hoje() string {
	return time.Now().Format("2006-01-02")
}

func toMovimentacaoResponse(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimentacaoResponse{
		ID:             m.ID,
		Tombo:          m.Tombo,
		NomeItem:       m.NomeItem,
		Pessoa:         m.Pessoa,
		Contato:        m.Contato,
		Pastoral:       m.Pastoral,
		Tipo:           m.Tipo,
		DataEmprestimo: m.DataEmprestimo,
		DataDevolucao:  m.DataDevolucao,
	}
}
