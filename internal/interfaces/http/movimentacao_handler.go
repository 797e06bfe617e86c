package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/patrimonio-api/internal/application/dto"
	"github.com/tu-usuario/patrimonio-api/internal/application/usecase"
	"github.com/tu-usuario/patrimonio-api/internal/domain"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
)

// MovimentacaoHandler maneja empréstimos y devoluções de bens.
type MovimentacaoHandler struct {
	uc *usecase.MovimentacaoUseCase
}

// NewMovimentacaoHandler construye el handler de movimentações.
func NewMovimentacaoHandler(uc *usecase.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movimentacoes
// @Produce      json
// @Success      200  {array}  dto.MovimentacaoResponse
// @Security     BearerAuth
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Registrar godoc
// @Summary      Registrar empréstimo o devolução
// @Tags         movimentacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "tipo EMPRESTIMO o DEVOLUCAO"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Tombo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tombo es requerido"})
	}
	if in.Tipo != entity.TipoEmprestimo && in.Tipo != entity.TipoDevolucao {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser EMPRESTIMO o DEVOLUCAO"})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBemNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrJaEmprestado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ON_LOAN", Message: err.Error()})
		case errors.Is(err, domain.ErrSemEmprestimoAtivo):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_LOAN", Message: err.Error()})
		case errors.Is(err, domain.ErrPersistencia):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
