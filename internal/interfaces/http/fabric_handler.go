package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/application/usecase"
	"github.com/kavins/produccion-api/internal/domain"
)

// FabricHandler maneja el CRUD del ledger de telas (protegido).
type FabricHandler struct {
	uc *usecase.FabricUseCase
}

// NewFabricHandler construye el handler.
func NewFabricHandler(uc *usecase.FabricUseCase) *FabricHandler {
	return &FabricHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar tela
// @Tags         fabrics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFabricRequest  true  "name, color, stock_rolls"
// @Success      201   {object}  dto.FabricResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fabrics [post]
func (h *FabricHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFabricRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y color son requeridos; el stock no puede ser negativo"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe esa tela en ese color"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar tela
// @Tags         fabrics
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tela"
// @Success      200  {object}  dto.FabricResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fabrics/{id} [get]
func (h *FabricHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tela no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar tela
// @Tags         fabrics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la tela"
// @Param        body  body  dto.UpdateFabricRequest  true  "campos editables"
// @Success      200   {object}  dto.FabricResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fabrics/{id} [put]
func (h *FabricHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFabricRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tela no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar telas
// @Tags         fabrics
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.FabricListResponse
// @Router       /api/fabrics [get]
func (h *FabricHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tela
// @Tags         fabrics
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tela"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fabrics/{id} [delete]
func (h *FabricHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tela no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
