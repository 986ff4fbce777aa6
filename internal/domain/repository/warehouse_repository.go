package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Insert(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	// GetByCode busca por código sin filtrar por IsActive: la verificación de
	// unicidad considera también registros desactivados.
	GetByCode(code string) (*entity.Warehouse, error)
	ListActive() ([]*entity.Warehouse, error)
}
