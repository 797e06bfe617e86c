// Package pdf implementa la generación de los reportes exportables del
// inventario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas del dominio (bens o movimentações)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/patrimonio-api/internal/application/usecase"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRelatorioGenerator implementa usecase.RelatorioPDFGenerator usando Maroto v2.
type MarotoRelatorioGenerator struct{}

var _ usecase.RelatorioPDFGenerator = (*MarotoRelatorioGenerator)(nil)

// NewMarotoRelatorioGenerator construye el generador.
func NewMarotoRelatorioGenerator() *MarotoRelatorioGenerator { return &MarotoRelatorioGenerator{} }

// GerarRelatorioBens genera el PDF del inventario de bens y devuelve sus bytes.
func (g *MarotoRelatorioGenerator) GerarRelatorioBens(_ context.Context, bens []*entity.Bem) ([]byte, error) {
	m := novoDocumento("Relatório de Bens Patrimoniais")

	m.AddRows(tableHeaderRow("Tombo", "Nome", "Categoria", "Localização", "Sala"))
	for _, b := range bens {
		m.AddRows(tableDetailRow(b.Tombo, b.Nome, b.Categoria, b.Localizacao, b.Sala))
	}
	m.AddRows(footerRows(len(bens))...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar relatório de bens: %w", err)
	}
	return doc.GetBytes(), nil
}

// GerarRelatorioMovimentacoes genera el PDF del historial de préstamos/devoluciones.
func (g *MarotoRelatorioGenerator) GerarRelatorioMovimentacoes(_ context.Context, movs []*entity.Movimentacao) ([]byte, error) {
	m := novoDocumento("Relatório de Movimentações")

	m.AddRows(tableHeaderRow("Tombo", "Item", "Pessoa", "Pastoral", "Empréstimo", "Devolução"))
	for _, mov := range movs {
		dev := mov.DataDevolucao
		if dev == "" {
			dev = "EM ABERTO"
		}
		m.AddRows(tableDetailRow(mov.Tombo, mov.NomeItem, mov.Pessoa, mov.Pastoral, mov.DataEmprestimo, dev))
	}
	m.AddRows(footerRows(len(movs))...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar relatório de movimentações: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func novoDocumento(titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(titulo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

// headerRow: título del reporte (izq) y fecha de emisión (der).
func headerRow(titulo string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(12).Add(
		col.New(8).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(titulos ...string) core.Row {
	r := row.New(7)
	ancho := 12 / len(titulos)
	for _, t := range titulos {
		r.Add(col.New(ancho).Add(text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})))
	}
	return r
}

func tableDetailRow(valores ...string) core.Row {
	r := row.New(6)
	ancho := 12 / len(valores)
	for _, v := range valores {
		r.Add(col.New(ancho).Add(text.New(v, props.Text{Size: 8, Top: 1})))
	}
	return r
}

func footerRows(total int) []core.Row {
	return []core.Row{
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
					Size: 8, Color: colorGray, Top: 1,
				}),
			),
		),
	}
}
