package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/order"
)

// OrderHandler maneja las peticiones HTTP de órdenes de traslado.
type OrderHandler struct {
	uc *order.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateOrderAndTransfer godoc
// @Summary      Trasladar stock entre bodegas y registrar la orden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "productId, sourceWareHouseId, destinationWareHouseId, productQuantity"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ServiceResponse
// @Failure      500   {object}  dto.ServiceResponse
// @Router       /api/orders/CreateOrderAndTransfer [post]
func (h *OrderHandler) CreateOrderAndTransfer(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result := h.uc.TransferProduct(c.Context(), in)
	return c.Status(result.StatusCode).JSON(result)
}

// GetAllOrders godoc
// @Summary      Listar órdenes de traslado
// @Tags         orders
// @Produce      json
// @Success      200  {array}   dto.OrderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/GetAllOrders [get]
func (h *OrderHandler) GetAllOrders(c *fiber.Ctx) error {
	orders, err := h.uc.GetAllOrders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(orders) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No orders found."})
	}
	return c.JSON(orders)
}
