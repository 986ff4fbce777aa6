package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP para Warehouse.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar bodegas activas
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}   dto.WarehouseDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseDTO  true  "wareHouseCode, wareHouseName"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ServiceResponse
// @Failure      500   {object}  dto.ServiceResponse
// @Router       /api/warehouse/CreateWareHouse [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.WarehouseDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result := h.uc.Create(in)
	return c.Status(result.StatusCode).JSON(result)
}
