package dto

// WarehouseDTO representa una bodega en la API (entrada de creación y
// elemento de listado).
type WarehouseDTO struct {
	WarehouseCode string `json:"wareHouseCode"`
	WarehouseName string `json:"wareHouseName"`
}
