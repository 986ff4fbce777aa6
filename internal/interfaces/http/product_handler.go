package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar stock por código de producto y/o bodega
// @Tags         products
// @Produce      json
// @Param        productCode    query  string  false  "Código de producto"
// @Param        warehouseCode  query  string  false  "Código de bodega"
// @Success      200  {array}   dto.ProductWarehouseDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/product/Search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	productCode := c.Query("productCode")
	warehouseCode := c.Query("warehouseCode")
	rows, err := h.uc.Search(productCode, warehouseCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear producto con stock inicial en una bodega
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "productCode, productQuantity, wareHouseCode, productDescription"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ServiceResponse
// @Failure      404   {object}  dto.ServiceResponse
// @Failure      500   {object}  dto.ServiceResponse
// @Router       /api/product/CreateProduct [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result := h.uc.CreateProduct(c.Context(), in)
	return c.Status(result.StatusCode).JSON(result)
}
