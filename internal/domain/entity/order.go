package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es el registro inmutable de un traslado de stock completado
// entre dos bodegas. Solo se crea como resultado de un traslado exitoso;
// nunca se modifica ni se elimina.
type Order struct {
	ID                     int64
	TransactionID          string // UUID del traslado que originó la orden
	ProductID              int64
	SourceWarehouseID      int64
	DestinationWarehouseID int64
	ProductQuantity        decimal.Decimal
	OrderDate              time.Time
	IsActive               bool
}
