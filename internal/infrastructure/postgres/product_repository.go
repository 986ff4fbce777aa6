package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Insert persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Insert(product *entity.Product) error {
	query := `
		INSERT INTO products (product_code, product_quantity, product_description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.ProductCode, product.ProductQuantity, product.ProductDescription, product.IsActive,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, product_code, product_quantity, product_description, is_active
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductCode, &p.ProductQuantity, &p.ProductDescription, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByCode obtiene un producto por código, activo o no.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `
		SELECT id, product_code, product_quantity, product_description, is_active
		FROM products WHERE product_code = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&p.ID, &p.ProductCode, &p.ProductQuantity, &p.ProductDescription, &p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return &p, nil
}

// ListActive lista los productos activos.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `
		SELECT id, product_code, product_quantity, product_description, is_active
		FROM products WHERE is_active = TRUE`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ProductCode, &p.ProductQuantity, &p.ProductDescription, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
