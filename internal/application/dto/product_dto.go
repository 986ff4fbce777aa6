package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/product/CreateProduct.
// WarehouseCode indica la bodega donde se almacena el stock inicial.
type CreateProductRequest struct {
	ProductCode        string          `json:"productCode"`
	ProductQuantity    decimal.Decimal `json:"productQuantity"`
	WarehouseCode      string          `json:"wareHouseCode"`
	ProductDescription string          `json:"productDescription"`
}

// ProductDTO representa un producto en los listados.
type ProductDTO struct {
	ProductCode        string          `json:"productCode"`
	ProductQuantity    decimal.Decimal `json:"productQuantity"`
	ProductDescription string          `json:"productDescription"`
}

// ProductWarehouseDTO fila de stock devuelta por la búsqueda
// producto/bodega.
type ProductWarehouseDTO struct {
	ProductCode   string          `json:"productCode"`
	WarehouseCode string          `json:"wareHouseCode"`
	WarehouseName string          `json:"wareHouseName"`
	Quantity      decimal.Decimal `json:"quantity"`
}
