package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kavins/produccion-api/internal/application/dto"
	"github.com/kavins/produccion-api/internal/application/usecase"
	"github.com/kavins/produccion-api/internal/domain"
)

// SeamstressHandler maneja el CRUD de costureras (protegido).
type SeamstressHandler struct {
	uc *usecase.SeamstressUseCase
}

// NewSeamstressHandler construye el handler.
func NewSeamstressHandler(uc *usecase.SeamstressUseCase) *SeamstressHandler {
	return &SeamstressHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar costurera
// @Tags         seamstresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSeamstressRequest  true  "name (requerido), phone, specialty"
// @Success      201   {object}  dto.SeamstressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/seamstresses [post]
func (h *SeamstressHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSeamstressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar costurera
// @Tags         seamstresses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la costurera"
// @Success      200  {object}  dto.SeamstressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seamstresses/{id} [get]
func (h *SeamstressHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "costurera no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar costurera
// @Tags         seamstresses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la costurera"
// @Param        body  body  dto.UpdateSeamstressRequest  true  "campos editables"
// @Success      200   {object}  dto.SeamstressResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/seamstresses/{id} [put]
func (h *SeamstressHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSeamstressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "costurera no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar costureras
// @Tags         seamstresses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.SeamstressListResponse
// @Router       /api/seamstresses [get]
func (h *SeamstressHandler) List(c *fiber.Ctx) error {
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
// @Summary      Eliminar costurera
// @Tags         seamstresses
// @Security     Bearer
// @Param        id  path  string  true  "ID de la costurera"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seamstresses/{id} [delete]
func (h *SeamstressHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "costurera no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
