// seed aplica opcionalmente el esquema y carga los datos de ejemplo:
// tres bodegas (WH001–WH003), nueve productos (P001–P009) con 20 unidades
// cada uno, distribuidos round-robin entre las bodegas.
//
// Uso: go run ./cmd/seed [-schema]
// Con -schema ejecuta primero migrations/001_init.sql. La carga es
// idempotente: los INSERT usan ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/warehouse-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/warehouse-api/pkg/config"
)

func main() {
	applySchema := flag.Bool("schema", false, "ejecutar migrations/001_init.sql antes de sembrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *applySchema {
		schemaPath := filepath.Join(findModuleRoot(), "migrations", "001_init.sql")
		sqlBytes, err := os.ReadFile(schemaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer esquema: %v\n", err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Esquema aplicado:", schemaPath)
	}

	if err := seed(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar datos: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Datos de ejemplo cargados: 3 bodegas, 9 productos, 9 filas de stock")
}

// seed inserta bodegas, productos y filas de unión con ids explícitos para
// que los datos coincidan entre ambientes, y ajusta las secuencias al final.
func seed(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := 1; i <= 3; i++ {
		_, err := tx.Exec(ctx, `
			INSERT INTO warehouses (id, warehouse_code, warehouse_name, is_active)
			VALUES ($1, $2, $3, TRUE)
			ON CONFLICT DO NOTHING`,
			i, fmt.Sprintf("WH%03d", i), fmt.Sprintf("Warehouse %d", i),
		)
		if err != nil {
			return fmt.Errorf("bodega %d: %w", i, err)
		}
	}

	for i := 1; i <= 9; i++ {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (id, product_code, product_quantity, product_description, is_active)
			VALUES ($1, $2, 20, $3, TRUE)
			ON CONFLICT DO NOTHING`,
			i, fmt.Sprintf("P%03d", i), fmt.Sprintf("Product %d", i),
		)
		if err != nil {
			return fmt.Errorf("producto %d: %w", i, err)
		}
	}

	// Reparto round-robin: productos 1,2,7 en WH1; 3,4,8 en WH2; 5,6,9 en WH3.
	stock := []struct{ id, productID, warehouseID int }{
		{1, 1, 1}, {2, 2, 1}, {3, 3, 2},
		{4, 4, 2}, {5, 5, 3}, {6, 6, 3},
		{7, 7, 1}, {8, 8, 2}, {9, 9, 3},
	}
	for _, s := range stock {
		_, err := tx.Exec(ctx, `
			INSERT INTO product_warehouses (id, product_id, warehouse_id, quantity, is_active)
			VALUES ($1, $2, $3, 20, TRUE)
			ON CONFLICT DO NOTHING`,
			s.id, s.productID, s.warehouseID,
		)
		if err != nil {
			return fmt.Errorf("stock producto %d bodega %d: %w", s.productID, s.warehouseID, err)
		}
	}

	// Los ids fueron explícitos: avanzar las secuencias para que los próximos
	// INSERT sin id no colisionen.
	for _, table := range []string{"warehouses", "products", "product_warehouses"} {
		_, err := tx.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
			table, table,
		))
		if err != nil {
			return fmt.Errorf("ajustar secuencia de %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
