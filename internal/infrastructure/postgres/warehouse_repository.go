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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL
// (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
// Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Insert persiste una nueva bodega y asigna su ID.
func (r *WarehouseRepo) Insert(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (warehouse_code, warehouse_name, is_active)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		warehouse.WarehouseCode, warehouse.WarehouseName, warehouse.IsActive,
	).Scan(&warehouse.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	query := `
		SELECT id, warehouse_code, warehouse_name, is_active
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.WarehouseCode, &w.WarehouseName, &w.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// GetByCode obtiene una bodega por código, activa o no.
func (r *WarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	query := `
		SELECT id, warehouse_code, warehouse_name, is_active
		FROM warehouses WHERE warehouse_code = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&w.ID, &w.WarehouseCode, &w.WarehouseName, &w.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by code: %w", err)
	}
	return &w, nil
}

// ListActive lista las bodegas activas.
func (r *WarehouseRepo) ListActive() ([]*entity.Warehouse, error) {
	query := `
		SELECT id, warehouse_code, warehouse_name, is_active
		FROM warehouses WHERE is_active = TRUE`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.WarehouseCode, &w.WarehouseName, &w.IsActive); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
