package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// ProductWarehouseRow es el resultado de la búsqueda de stock enriquecida
// con los códigos de producto/bodega y el nombre de la bodega.
type ProductWarehouseRow struct {
	ProductCode   string
	WarehouseCode string
	WarehouseName string
	Quantity      decimal.Decimal
}

// StockRepository define el puerto para consultar/actualizar las filas de
// unión producto-bodega. Usado dentro de transacciones para garantizar
// consistencia en los traslados.
type StockRepository interface {
	// Get devuelve la fila de unión, o una fila con cantidad cero si no existe.
	Get(productID, warehouseID int64) (*entity.ProductWarehouse, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID int64) (*entity.ProductWarehouse, error)
	Upsert(pw *entity.ProductWarehouse) error
	// Search devuelve las filas de unión que cumplen TODOS los filtros
	// provistos; un filtro vacío no restringe.
	Search(productCode, warehouseCode string) ([]ProductWarehouseRow, error)
}
