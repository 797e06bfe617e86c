package pdf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/pdf"
)

func TestGerarRelatorioBens_ProduceDocumentoPDF(t *testing.T) {
	g := pdf.NewMarotoRelatorioGenerator()

	doc, err := g.GerarRelatorioBens(context.Background(), []*entity.Bem{
		{ID: "bem-1", Tombo: "1001", Nome: "Projetor Epson", Categoria: "Eletrônicos", Sala: "Sala 2"},
		{ID: "bem-2", Tombo: "1002", Nome: "Cadeira", Categoria: "Mobiliário"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "el documento debe tener cabecera PDF")
}

func TestGerarRelatorioMovimentacoes_ProduceDocumentoPDF(t *testing.T) {
	g := pdf.NewMarotoRelatorioGenerator()

	doc, err := g.GerarRelatorioMovimentacoes(context.Background(), []*entity.Movimentacao{
		{ID: "mov-1", Tombo: "1001", NomeItem: "Projetor Epson", Pessoa: "Maria",
			Tipo: entity.TipoEmprestimo, DataEmprestimo: "2026-08-01"},
		{ID: "mov-2", Tombo: "1002", NomeItem: "Cadeira", Pessoa: "Pedro",
			Tipo: entity.TipoEmprestimo, DataEmprestimo: "2026-07-10", DataDevolucao: "2026-07-20"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestGerarRelatorio_SinFilas(t *testing.T) {
	g := pdf.NewMarotoRelatorioGenerator()

	doc, err := g.GerarRelatorioBens(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, doc, "un inventario vacío también genera documento")
}
