package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fulfilment-api/internal/application/dto"
	"github.com/jhoicas/fulfilment-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP para unidades de bodega.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar unidades de bodega (archivadas incluidas)
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByBusinessUnitCode godoc
// @Summary      Obtener la unidad activa por business unit code
// @Tags         warehouses
// @Produce      json
// @Param        businessUnitCode  path  string  true  "Business unit code"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /warehouse/{businessUnitCode} [get]
func (h *WarehouseHandler) GetByBusinessUnitCode(c *fiber.Ctx) error {
	code := c.Params("businessUnitCode")
	out, err := h.uc.GetByBusinessUnitCode(c.Context(), code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear una unidad de bodega activa
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /warehouse [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Replace godoc
// @Summary      Reemplazar la unidad activa (archiva la configuración anterior)
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        businessUnitCode  path  string  true  "Business unit code"
// @Param        body  body  dto.WarehouseRequest  true  "Configuración nueva"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /warehouse/{businessUnitCode} [put]
func (h *WarehouseHandler) Replace(c *fiber.Ctx) error {
	var in dto.WarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El code del path manda sobre el del cuerpo, como en PUT clásico.
	in.BusinessUnitCode = c.Params("businessUnitCode")
	out, err := h.uc.Replace(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar la unidad activa (soft delete, conserva historial)
// @Tags         warehouses
// @Param        businessUnitCode  path  string  true  "Business unit code"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /warehouse/{businessUnitCode} [delete]
func (h *WarehouseHandler) Archive(c *fiber.Ctx) error {
	code := c.Params("businessUnitCode")
	if err := h.uc.Archive(c.Context(), code); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
