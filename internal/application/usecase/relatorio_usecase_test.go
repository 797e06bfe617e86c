package usecase_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/patrimonio-api/internal/application/usecase"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite"
)

// pdfStub registra las filas recibidas y devuelve un documento fijo.
type pdfStub struct {
	bens []*entity.Bem
	movs []*entity.Movimentacao
}

func (s *pdfStub) GerarRelatorioBens(_ context.Context, bens []*entity.Bem) ([]byte, error) {
	s.bens = bens
	return []byte("%PDF-stub"), nil
}

func (s *pdfStub) GerarRelatorioMovimentacoes(_ context.Context, movs []*entity.Movimentacao) ([]byte, error) {
	s.movs = movs
	return []byte("%PDF-stub"), nil
}

func newRelatorioEnv(t *testing.T) (*testEnv, *pdfStub, *usecase.RelatorioUseCase) {
	t.Helper()
	env := newTestEnv(t)
	stub := &pdfStub{}
	uc := usecase.NewRelatorioUseCase(
		sqlite.NewBemRepository(env.engine),
		sqlite.NewMovimentacaoRepository(env.engine),
		stub,
	)
	return env, stub, uc
}

func TestRelatorioUseCase_BensPDF(t *testing.T) {
	env, stub, uc := newRelatorioEnv(t)
	env.criarBem(t, "1001", "Projetor")
	env.criarBem(t, "1002", "Notebook")

	rel, err := uc.Bens(context.Background(), usecase.FormatoPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", rel.ContentType)
	assert.Equal(t, "relatorio_bens.pdf", rel.NomeArquivo)
	assert.Equal(t, []byte("%PDF-stub"), rel.Conteudo)
	assert.Len(t, stub.bens, 2, "el generador debe recibir todas las filas")
}

func TestRelatorioUseCase_BensCSV(t *testing.T) {
	env, _, uc := newRelatorioEnv(t)
	env.criarBem(t, "1001", "Projetor")

	rel, err := uc.Bens(context.Background(), usecase.FormatoCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", rel.ContentType)

	records, err := csv.NewReader(strings.NewReader(string(rel.Conteudo))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "cabecera + una fila")
	assert.Equal(t, "Tombo", records[0][0])
	assert.Equal(t, "1001", records[1][0])
	assert.Equal(t, "Projetor", records[1][1])
}

func TestRelatorioUseCase_MovimentacoesCSV_PrestamoAbierto(t *testing.T) {
	env, _, uc := newRelatorioEnv(t)
	env.criarBem(t, "1001", "Projetor")
	env.emprestar(t, "1001", "Maria")

	rel, err := uc.Movimentacoes(context.Background(), usecase.FormatoCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(rel.Conteudo))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	fila := records[1]
	assert.Equal(t, "1001", fila[0])
	assert.Equal(t, "Projetor", fila[1])
	assert.Equal(t, "Maria", fila[2])
	assert.Equal(t, "EM ABERTO", fila[len(fila)-1],
		"préstamo sin devolución se reporta como abierto")
}

func TestRelatorioUseCase_FormatoDesconocido(t *testing.T) {
	_, _, uc := newRelatorioEnv(t)

	_, err := uc.Bens(context.Background(), "xlsx")
	assert.Error(t, err)
	_, err = uc.Movimentacoes(context.Background(), "docx")
	assert.Error(t, err)
}
