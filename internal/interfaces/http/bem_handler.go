package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/patrimonio-api/internal/application/dto"
	"github.com/tu-usuario/patrimonio-api/internal/application/usecase"
	"github.com/tu-usuario/patrimonio-api/internal/domain"
)

// BemHandler maneja el catálogo de bens patrimoniais.
type BemHandler struct {
	uc *usecase.BemUseCase
}

// NewBemHandler construye el handler de bens.
func NewBemHandler(uc *usecase.BemUseCase) *BemHandler {
	return &BemHandler{uc: uc}
}

// List godoc
// @Summary      Listar bens
// @Tags         bens
// @Produce      json
// @Success      200  {array}  dto.BemResponse
// @Security     BearerAuth
// @Router       /api/bens [get]
func (h *BemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar bem
// @Tags         bens
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBemRequest  true  "tombo, nome, categoria, localizacao, sala"
// @Success      201   {object}  dto.BemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/bens [post]
func (h *BemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Tombo == "" || in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tombo y nome son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTomboDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_TOMBO", Message: err.Error()})
		case errors.Is(err, domain.ErrPersistencia):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar bem
// @Tags         bens
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del bem"
// @Param        body  body  dto.UpdateBemRequest  true  "campos editables"
// @Success      200   {object}  dto.BemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/bens/{id} [put]
func (h *BemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Tombo == "" || in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tombo y nome son requeridos"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBemNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrTomboDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_TOMBO", Message: err.Error()})
		case errors.Is(err, domain.ErrPersistencia):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bem
// @Tags         bens
// @Produce      json
// @Param        id   path      string  true  "ID del bem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/bens/{id} [delete]
func (h *BemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrBemNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case errors.Is(err, domain.ErrBemEmprestado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ASSET_ON_LOAN", Message: err.Error()})
		case errors.Is(err, domain.ErrPersistencia):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
