package entity

import "github.com/shopspring/decimal"

// Product representa un producto identificado por un código único.
// El stock por bodega vive en ProductWarehouse; ProductQuantity es la
// cantidad nominal declarada al crear el producto.
type Product struct {
	ID                 int64
	ProductCode        string // código único, máx. 100 caracteres
	ProductQuantity    decimal.Decimal
	ProductDescription string // máx. 500 caracteres
	IsActive           bool
}
