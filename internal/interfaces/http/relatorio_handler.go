package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/patrimonio-api/internal/application/dto"
	"github.com/tu-usuario/patrimonio-api/internal/application/usecase"
)

// RelatorioHandler expone los relatórios exportables (PDF y CSV).
type RelatorioHandler struct {
	uc *usecase.RelatorioUseCase
}

// NewRelatorioHandler construye el handler de relatórios.
func NewRelatorioHandler(uc *usecase.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// Bens godoc
// @Summary      Relatório de bens
// @Tags         relatorios
// @Produce      application/pdf
// @Param        formato  query  string  false  "pdf o csv"  default(pdf)
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/relatorios/bens [get]
func (h *RelatorioHandler) Bens(c *fiber.Ctx) error {
	formato, ok := parseFormato(c.Query("formato", usecase.FormatoPDF))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato debe ser pdf o csv"})
	}
	rel, err := h.uc.Bens(c.Context(), formato)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviar(c, rel)
}

// Movimentacoes godoc
// @Summary      Relatório de movimentações
// @Tags         relatorios
// @Produce      application/pdf
// @Param        formato  query  string  false  "pdf o csv"  default(pdf)
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /api/relatorios/movimentacoes [get]
func (h *RelatorioHandler) Movimentacoes(c *fiber.Ctx) error {
	formato, ok := parseFormato(c.Query("formato", usecase.FormatoPDF))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato debe ser pdf o csv"})
	}
	rel, err := h.uc.Movimentacoes(c.Context(), formato)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return enviar(c, rel)
}

func parseFormato(s string) (string, bool) {
	switch s {
	case usecase.FormatoPDF, usecase.FormatoCSV:
		return s, true
	}
	return "", false
}

func enviar(c *fiber.Ctx, rel *usecase.Relatorio) error {
	c.Set(fiber.HeaderContentType, rel.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rel.NomeArquivo+`"`)
	return c.Send(rel.Conteudo)
}
