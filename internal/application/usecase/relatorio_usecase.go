package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatoPDF = "pdf"
	FormatoCSV = "csv"
)

// RelatorioPDFGenerator puerto hacia el renderizador PDF.
type RelatorioPDFGenerator interface {
	GerarRelatorioBens(ctx context.Context, bens []*entity.Bem) ([]byte, error)
	GerarRelatorioMovimentacoes(ctx context.Context, movs []*entity.Movimentacao) ([]byte, error)
}

// Relatorio documento exportado listo para servir.
type Relatorio struct {
	Conteudo    []byte
	ContentType string
	NomeArquivo string
}

// RelatorioUseCase produce los reportes exportables de bens y movimentações.
type RelatorioUseCase struct {
	bemRepo repository.BemRepository
	movRepo repository.MovimentacaoRepository
	pdf     RelatorioPDFGenerator
}

// NewRelatorioUseCase construye el caso de uso de reportes.
func NewRelatorioUseCase(bemRepo repository.BemRepository, movRepo repository.MovimentacaoRepository, pdf RelatorioPDFGenerator) *RelatorioUseCase {
	return &RelatorioUseCase{bemRepo: bemRepo, movRepo: movRepo, pdf: pdf}
}

// Bens genera el reporte del inventario en el formato pedido.
func (uc *RelatorioUseCase) Bens(ctx context.Context, formato string) (*Relatorio, error) {
	bens, err := uc.bemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	switch formato {
	case FormatoPDF:
		conteudo, err := uc.pdf.GerarRelatorioBens(ctx, bens)
		if err != nil {
			return nil, err
		}
		return &Relatorio{Conteudo: conteudo, ContentType: "application/pdf", NomeArquivo: "relatorio_bens.pdf"}, nil
	case FormatoCSV:
		conteudo, err := bensCSV(bens)
		if err != nil {
			return nil, err
		}
		return &Relatorio{Conteudo: conteudo, ContentType: "text/csv", NomeArquivo: "relatorio_bens.csv"}, nil
	default:
		return nil, fmt.Errorf("formato de relatório não suportado: %q", formato)
	}
}

// Movimentacoes genera el reporte de préstamos/devoluciones en el formato pedido.
func (uc *RelatorioUseCase) Movimentacoes(ctx context.Context, formato string) (*Relatorio, error) {
	movs, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	switch formato {
	case FormatoPDF:
		conteudo, err := uc.pdf.GerarRelatorioMovimentacoes(ctx, movs)
		if err != nil {
			return nil, err
		}
		return &Relatorio{Conteudo: conteudo, ContentType: "application/pdf", NomeArquivo: "relatorio_movimentacoes.pdf"}, nil
	case FormatoCSV:
		conteudo, err := movimentacoesCSV(movs)
		if err != nil {
			return nil, err
		}
		return &Relatorio{Conteudo: conteudo, ContentType: "text/csv", NomeArquivo: "relatorio_movimentacoes.csv"}, nil
	default:
		return nil, fmt.Errorf("formato de relatório não suportado: %q", formato)
	}
}

func bensCSV(bens []*entity.Bem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Tombo", "Nome", "Categoria", "Localização", "Sala"})
	for _, b := range bens {
		if err := w.Write([]string{b.Tombo, b.Nome, b.Categoria, b.Localizacao, b.Sala}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func movimentacoesCSV(movs []*entity.Movimentacao) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Tombo", "Item", "Pessoa", "Contato", "Pastoral", "Tipo", "Empréstimo", "Devolução"})
	for _, m := range movs {
		dev := m.DataDevolucao
		if dev == "" {
			dev = "EM ABERTO"
		}
		if err := w.Write([]string{m.Tombo, m.NomeItem, m.Pessoa, m.Contato, m.Pastoral, m.Tipo, m.DataEmprestimo, dev}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
