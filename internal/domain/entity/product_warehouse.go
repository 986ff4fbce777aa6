package entity

import "github.com/shopspring/decimal"

// ProductWarehouse es la fila de unión producto-bodega con la cantidad
// en existencia. Es la única fuente de verdad de "cuánto hay de P en W":
// a lo sumo una fila activa por par (producto, bodega).
type ProductWarehouse struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    decimal.Decimal
	IsActive    bool
}
