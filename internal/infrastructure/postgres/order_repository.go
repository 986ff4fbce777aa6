package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con
// pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden de traslado y asigna su ID.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (transaction_id, product_id, source_warehouse_id, destination_warehouse_id, product_quantity, order_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.TransactionID, order.ProductID, order.SourceWarehouseID,
		order.DestinationWarehouseID, order.ProductQuantity, order.OrderDate, order.IsActive,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListWithDetails devuelve todas las órdenes con descripción del producto,
// nombres de bodegas y cantidades actuales de las filas de unión. Una orden
// conserva su fila aunque el stock haya seguido cambiando: las cantidades
// reflejan el estado actual, no el del momento del traslado.
func (r *OrderRepo) ListWithDetails() ([]repository.OrderRow, error) {
	query := `
		SELECT sw.warehouse_name,
		       dw.warehouse_name,
		       p.product_description,
		       o.product_quantity,
		       COALESCE(spw.quantity, 0),
		       COALESCE(dpw.quantity, 0)
		FROM orders o
		JOIN products p ON p.id = o.product_id
		JOIN warehouses sw ON sw.id = o.source_warehouse_id
		JOIN warehouses dw ON dw.id = o.destination_warehouse_id
		LEFT JOIN product_warehouses spw
		       ON spw.product_id = o.product_id AND spw.warehouse_id = o.source_warehouse_id
		LEFT JOIN product_warehouses dpw
		       ON dpw.product_id = o.product_id AND dpw.warehouse_id = o.destination_warehouse_id
		ORDER BY o.order_date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []repository.OrderRow
	for rows.Next() {
		var row repository.OrderRow
		if err := rows.Scan(
			&row.SourceWarehouseName, &row.DestinationWarehouseName, &row.ProductName,
			&row.ProductQuantityOrdered, &row.NewSourceQuantity, &row.NewDestinationQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
