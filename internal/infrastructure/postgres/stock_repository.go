package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de unión de un producto en una bodega. Si no existe,
// devuelve una fila con cantidad cero lista para Upsert.
func (r *StockRepo) Get(productID, warehouseID int64) (*entity.ProductWarehouse, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, is_active
		FROM product_warehouses WHERE product_id = $1 AND warehouse_id = $2`
	var pw entity.ProductWarehouse
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&pw.ID, &pw.ProductID, &pw.WarehouseID, &pw.Quantity, &pw.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ProductWarehouse{
				ProductID:   productID,
				WarehouseID: warehouseID,
				Quantity:    decimal.Zero,
				IsActive:    true,
			}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &pw, nil
}

// GetForUpdate obtiene la fila de unión y la bloquea para update
// (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, warehouseID int64) (*entity.ProductWarehouse, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, is_active
		FROM product_warehouses WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var pw entity.ProductWarehouse
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&pw.ID, &pw.ProductID, &pw.WarehouseID, &pw.Quantity, &pw.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ProductWarehouse{
				ProductID:   productID,
				WarehouseID: warehouseID,
				Quantity:    decimal.Zero,
				IsActive:    true,
			}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &pw, nil
}

// Upsert inserta o actualiza la cantidad de la fila de unión (por producto y
// bodega).
func (r *StockRepo) Upsert(pw *entity.ProductWarehouse) error {
	query := `
		INSERT INTO product_warehouses (product_id, warehouse_id, quantity, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity`
	_, err := r.q.Exec(context.Background(), query,
		pw.ProductID, pw.WarehouseID, pw.Quantity, pw.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// Search devuelve las filas de unión que cumplen todos los filtros provistos,
// enriquecidas con códigos y nombre de bodega. Filtros vacíos no restringen.
func (r *StockRepo) Search(productCode, warehouseCode string) ([]repository.ProductWarehouseRow, error) {
	query := `
		SELECT p.product_code, w.warehouse_code, w.warehouse_name, pw.quantity
		FROM product_warehouses pw
		JOIN products p ON p.id = pw.product_id
		JOIN warehouses w ON w.id = pw.warehouse_id`
	var args []any
	if productCode != "" {
		args = append(args, productCode)
		query += fmt.Sprintf(" WHERE p.product_code = $%d", len(args))
	}
	if warehouseCode != "" {
		args = append(args, warehouseCode)
		kw := " WHERE"
		if len(args) > 1 {
			kw = " AND"
		}
		query += fmt.Sprintf("%s w.warehouse_code = $%d", kw, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search stock: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWarehouseRow
	for rows.Next() {
		var row repository.ProductWarehouseRow
		if err := rows.Scan(&row.ProductCode, &row.WarehouseCode, &row.WarehouseName, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
