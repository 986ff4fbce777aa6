package entity

// Warehouse representa una bodega identificada por un código único.
// IsActive implementa borrado lógico: las bodegas nunca se eliminan físicamente.
type Warehouse struct {
	ID            int64
	WarehouseCode string // código único, máx. 50 caracteres
	WarehouseName string // máx. 100 caracteres
	IsActive      bool
}
