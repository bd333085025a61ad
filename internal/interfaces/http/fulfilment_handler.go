package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fulfilment-api/internal/application/dto"
	"github.com/jhoicas/fulfilment-api/internal/application/usecase"
)

// FulfilmentHandler maneja las peticiones HTTP de asignaciones de fulfilment.
type FulfilmentHandler struct {
	uc *usecase.FulfilmentUseCase
}

// NewFulfilmentHandler construye el handler.
func NewFulfilmentHandler(uc *usecase.FulfilmentUseCase) *FulfilmentHandler {
	return &FulfilmentHandler{uc: uc}
}

// Assign godoc
// @Summary      Asignar una bodega a un par tienda/producto
// @Description  Reenviar una tripleta ya existente responde 201 sin crear nada (idempotente).
// @Tags         fulfilment
// @Accept       json
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /fulfilment [post]
func (h *FulfilmentHandler) Assign(c *fiber.Ctx) error {
	var in dto.FulfilmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Assign(c.Context(), in.StoreID, in.ProductID, in.WarehouseBusinessUnitCode); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// List godoc
// @Summary      Listar asignaciones de fulfilment
// @Tags         fulfilment
// @Produce      json
// @Success      200  {array}  dto.FulfilmentAssignmentResponse
// @Router       /fulfilment [get]
func (h *FulfilmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
