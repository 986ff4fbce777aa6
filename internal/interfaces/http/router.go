package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/warehouse-api/internal/application/order"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC     *order.OrderUseCase
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Orders (traslados)
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/CreateOrderAndTransfer", orderHandler.CreateOrderAndTransfer)
	orders.Get("/GetAllOrders", orderHandler.GetAllOrders)

	// Products
	products := api.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/Search", productHandler.Search)
	products.Get("/", productHandler.List)
	products.Post("/CreateProduct", productHandler.Create)

	// Warehouses
	warehouses := api.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/CreateWareHouse", warehouseHandler.Create)
}
