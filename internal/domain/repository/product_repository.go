package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Insert persiste el producto y asigna product.ID.
	Insert(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	ListActive() ([]*entity.Product, error)
}
