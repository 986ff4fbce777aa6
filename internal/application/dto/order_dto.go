package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest body para POST /api/orders/CreateOrderAndTransfer.
type CreateOrderRequest struct {
	ProductID              int64           `json:"productId"`
	SourceWarehouseID      int64           `json:"sourceWareHouseId"`
	DestinationWarehouseID int64           `json:"destinationWareHouseId"`
	ProductQuantity        decimal.Decimal `json:"productQuantity"`
}

// OrderDTO resumen de una orden de traslado con nombres resueltos y las
// cantidades actuales en origen y destino.
type OrderDTO struct {
	SourceWarehouseName             string          `json:"sourceWareHouseName"`
	DestinationWarehouseName        string          `json:"destinationWareHouseName"`
	ProductName                     string          `json:"productName"`
	ProductQuantityOrdered          decimal.Decimal `json:"productQuantityOrdered"`
	NewSourceWarehouseQuantity      decimal.Decimal `json:"newSourceWarehouseQuantity"`
	NewDestinationWarehouseQuantity decimal.Decimal `json:"newDestinationWareHouseQuantity"`
}
