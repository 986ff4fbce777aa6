package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// OrderRow es una orden resuelta con nombres y cantidades actuales,
// tal como se expone en el listado de órdenes.
type OrderRow struct {
	SourceWarehouseName      string
	DestinationWarehouseName string
	ProductName              string
	ProductQuantityOrdered   decimal.Decimal
	NewSourceQuantity        decimal.Decimal
	NewDestinationQuantity   decimal.Decimal
}

// OrderRepository define el puerto de persistencia para las órdenes de traslado.
type OrderRepository interface {
	// Create persiste la orden y asigna order.ID.
	Create(order *entity.Order) error
	// ListWithDetails devuelve todas las órdenes con producto, bodegas y
	// cantidades actuales resueltos.
	ListWithDetails() ([]OrderRow, error)
}
