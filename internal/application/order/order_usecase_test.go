package order_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/order"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct{ productID, warehouseID int64 }

// fakeStore simula la base: filas de unión por par producto-bodega y órdenes.
type fakeStore struct {
	stock  map[stockKey]*entity.ProductWarehouse
	orders []entity.Order
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{stock: make(map[stockKey]*entity.ProductWarehouse)}
}

// setStock siembra una fila de unión con la cantidad dada.
func (s *fakeStore) setStock(productID, warehouseID int64, qty int64) {
	s.nextID++
	s.stock[stockKey{productID, warehouseID}] = &entity.ProductWarehouse{
		ID:          s.nextID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    decimal.NewFromInt(qty),
		IsActive:    true,
	}
}

func (s *fakeStore) quantity(productID, warehouseID int64) decimal.Decimal {
	if row, ok := s.stock[stockKey{productID, warehouseID}]; ok {
		return row.Quantity
	}
	return decimal.Zero
}

// snapshot copia el estado para poder restaurarlo en caso de rollback.
func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	cp.nextID = s.nextID
	for k, v := range s.stock {
		row := *v
		cp.stock[k] = &row
	}
	cp.orders = append(cp.orders, s.orders...)
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.stock = snap.stock
	s.orders = snap.orders
	s.nextID = snap.nextID
}

type fakeStockRepo struct{ store *fakeStore }

func (r *fakeStockRepo) Get(productID, warehouseID int64) (*entity.ProductWarehouse, error) {
	if row, ok := r.store.stock[stockKey{productID, warehouseID}]; ok {
		cp := *row
		return &cp, nil
	}
	// Fila ausente => cantidad cero, igual que el repositorio real.
	return &entity.ProductWarehouse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    decimal.Zero,
		IsActive:    true,
	}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID int64) (*entity.ProductWarehouse, error) {
	return r.Get(productID, warehouseID)
}

func (r *fakeStockRepo) Upsert(pw *entity.ProductWarehouse) error {
	cp := *pw
	if cp.ID == 0 {
		r.store.nextID++
		cp.ID = r.store.nextID
	}
	r.store.stock[stockKey{pw.ProductID, pw.WarehouseID}] = &cp
	return nil
}

func (r *fakeStockRepo) Search(productCode, warehouseCode string) ([]repository.ProductWarehouseRow, error) {
	return nil, nil
}

type fakeOrderRepo struct {
	store *fakeStore
	rows  []repository.OrderRow
	fail  error // si no es nil, Create falla con este error
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	if r.fail != nil {
		return r.fail
	}
	r.store.nextID++
	o.ID = r.store.nextID
	r.store.orders = append(r.store.orders, *o)
	return nil
}

func (r *fakeOrderRepo) ListWithDetails() ([]repository.OrderRow, error) {
	return r.rows, nil
}

type fakeProductRepo struct{}

func (fakeProductRepo) Insert(*entity.Product) error { return nil }
func (fakeProductRepo) GetByID(int64) (*entity.Product, error) { return nil, nil }
func (fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (fakeProductRepo) ListActive() ([]*entity.Product, error) { return nil, nil }

// fakeTxRunner ejecuta fn contra el store y restaura el snapshot si falla,
// emulando el rollback de la transacción real.
type fakeTxRunner struct {
	store     *fakeStore
	orderFail error
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.OrderRepository,
	repository.StockRepository,
	repository.ProductRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&fakeOrderRepo{store: r.store, fail: r.orderFail},
		&fakeStockRepo{store: r.store},
		fakeProductRepo{},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func newUseCase(store *fakeStore) *order.OrderUseCase {
	return order.NewOrderUseCase(&fakeTxRunner{store: store}, &fakeOrderRepo{store: store}, testLogger())
}

func transferReq(productID, sourceID, destID, qty int64) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ProductID:              productID,
		SourceWarehouseID:      sourceID,
		DestinationWarehouseID: destID,
		ProductQuantity:        decimal.NewFromInt(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TransferProduct
// ──────────────────────────────────────────────────────────────────────────────

// Origen y destino iguales → 400 sin tocar el estado.
func TestTransferProduct_MismaBodega_Retorna400(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 20)
	uc := newUseCase(store)

	resp := uc.TransferProduct(context.Background(), transferReq(1, 1, 1, 5))

	assert.False(t, resp.Succeeded)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Source and destination warehouses cannot be the same.", resp.Message)
	assert.True(t, decimal.NewFromInt(20).Equal(store.quantity(1, 1)),
		"la cantidad de origen no debe cambiar")
	assert.Empty(t, store.orders, "no debe registrarse ninguna orden")
}

// Cantidad no positiva → 400.
func TestTransferProduct_CantidadNoPositiva_Retorna400(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 20)
	uc := newUseCase(store)

	for _, qty := range []int64{0, -5} {
		resp := uc.TransferProduct(context.Background(), transferReq(1, 1, 2, qty))
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, "Product quantity must be a positive value.", resp.Message)
	}
	assert.Empty(t, store.orders)
}

// Stock insuficiente en origen → 400 con mensaje específico y sin cambios.
func TestTransferProduct_StockInsuficiente_Retorna400(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 3)
	uc := newUseCase(store)

	resp := uc.TransferProduct(context.Background(), transferReq(1, 1, 2, 5))

	assert.False(t, resp.Succeeded)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Insufficient stock for product 1 in warehouse 1.", resp.Message)
	assert.True(t, decimal.NewFromInt(3).Equal(store.quantity(1, 1)))
	assert.True(t, decimal.Zero.Equal(store.quantity(1, 2)))
	assert.Empty(t, store.orders)
}

// Origen sin fila de unión equivale a cantidad cero → stock insuficiente.
func TestTransferProduct_OrigenSinFila_EsStockInsuficiente(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	resp := uc.TransferProduct(context.Background(), transferReq(7, 9, 2, 1))

	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Insufficient stock for product 7 in warehouse 9.", resp.Message)
}

// Traslado válido: el origen baja, el destino (sin fila previa) se crea con
// la cantidad, y queda registrada exactamente una orden.
func TestTransferProduct_Valido_ActualizaStockYRegistraOrden(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 20)
	uc := newUseCase(store)

	resp := uc.TransferProduct(context.Background(), transferReq(1, 1, 2, 5))

	require.True(t, resp.Succeeded, "el traslado debe ser exitoso: %s", resp.Message)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t,
		"Product transferred successfully. "+
			"Source Warehouse (1) now has 15 units of product 1. "+
			"Destination Warehouse (2) now has 5 units of product 1.",
		resp.Message)

	assert.True(t, decimal.NewFromInt(15).Equal(store.quantity(1, 1)))
	assert.True(t, decimal.NewFromInt(5).Equal(store.quantity(1, 2)))

	require.Len(t, store.orders, 1)
	o := store.orders[0]
	assert.Equal(t, int64(1), o.ProductID)
	assert.Equal(t, int64(1), o.SourceWarehouseID)
	assert.Equal(t, int64(2), o.DestinationWarehouseID)
	assert.True(t, decimal.NewFromInt(5).Equal(o.ProductQuantity))
	assert.True(t, o.IsActive)
	assert.False(t, o.OrderDate.IsZero(), "la orden debe llevar fecha")
	_, err := uuid.Parse(o.TransactionID)
	assert.NoError(t, err, "el transaction id debe ser un UUID válido")
}

// El traslado no es idempotente: repetirlo acumula cantidades y órdenes.
func TestTransferProduct_Repetido_AcumulaCantidadesYOrdenes(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 20)
	uc := newUseCase(store)

	first := uc.TransferProduct(context.Background(), transferReq(1, 1, 2, 5))
	second := uc.TransferProduct(context.Background(), transferReq(1, 1, 2, 5))

	require.True(t, first.Succeeded)
	require.True(t, second.Succeeded)
	assert.True(t, decimal.NewFromInt(10).Equal(store.quantity(1, 1)))
	assert.True(t, decimal.NewFromInt(10).Equal(store.quantity(1, 2)))
	require.Len(t, store.orders, 2)
	assert.NotEqual(t, store.orders[0].TransactionID, store.orders[1].TransactionID,
		"cada traslado lleva su propio transaction id")
}

// Trasladar exactamente todo el stock disponible es válido: origen queda en 0.
func TestTransferProduct_TodoElStock_OrigenQuedaEnCero(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 20)
	uc := newUseCase(store)

	resp := uc.TransferProduct(context.Background(), transferReq(1, 1, 3, 20))

	require.True(t, resp.Succeeded, resp.Message)
	assert.True(t, decimal.Zero.Equal(store.quantity(1, 1)))
	assert.True(t, decimal.NewFromInt(20).Equal(store.quantity(1, 3)))
}

// Si registrar la orden falla, la transacción se revierte completa:
// ninguna cantidad cambia aunque los upserts de stock ya se hubieran hecho.
func TestTransferProduct_FalloAlRegistrarOrden_RevierteStock(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 20)
	runner := &fakeTxRunner{store: store, orderFail: errors.New("insert orders: connection reset")}
	uc := order.NewOrderUseCase(runner, &fakeOrderRepo{store: store}, testLogger())

	resp := uc.TransferProduct(context.Background(), transferReq(1, 1, 2, 5))

	assert.False(t, resp.Succeeded)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Message, "An error occurred:")
	assert.True(t, decimal.NewFromInt(20).Equal(store.quantity(1, 1)),
		"el rollback debe restaurar la cantidad de origen")
	assert.True(t, decimal.Zero.Equal(store.quantity(1, 2)),
		"el rollback no debe dejar fila en destino")
	assert.Empty(t, store.orders)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetAllOrders
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAllOrders_MapeaFilasADTO(t *testing.T) {
	store := newFakeStore()
	rows := []repository.OrderRow{
		{
			SourceWarehouseName:      "Warehouse 1",
			DestinationWarehouseName: "Warehouse 2",
			ProductName:              "Product 1",
			ProductQuantityOrdered:   decimal.NewFromInt(5),
			NewSourceQuantity:        decimal.NewFromInt(15),
			NewDestinationQuantity:   decimal.NewFromInt(5),
		},
	}
	uc := order.NewOrderUseCase(&fakeTxRunner{store: store}, &fakeOrderRepo{store: store, rows: rows}, testLogger())

	orders, err := uc.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Warehouse 1", orders[0].SourceWarehouseName)
	assert.Equal(t, "Warehouse 2", orders[0].DestinationWarehouseName)
	assert.Equal(t, "Product 1", orders[0].ProductName)
	assert.True(t, decimal.NewFromInt(5).Equal(orders[0].ProductQuantityOrdered))
	assert.True(t, decimal.NewFromInt(15).Equal(orders[0].NewSourceWarehouseQuantity))
	assert.True(t, decimal.NewFromInt(5).Equal(orders[0].NewDestinationWarehouseQuantity))
}

func TestGetAllOrders_SinOrdenes_ListaVacia(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	orders, err := uc.GetAllOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

// Sanidad del helper: decimal con formato fraccionario también se compara bien.
func TestTransferProduct_CantidadFraccionaria(t *testing.T) {
	store := newFakeStore()
	store.setStock(1, 1, 20)
	uc := newUseCase(store)

	qty, err := decimal.NewFromString("2.5")
	require.NoError(t, err)
	resp := uc.TransferProduct(context.Background(), dto.CreateOrderRequest{
		ProductID:              1,
		SourceWarehouseID:      1,
		DestinationWarehouseID: 2,
		ProductQuantity:        qty,
	})

	require.True(t, resp.Succeeded, resp.Message)
	assert.True(t, store.quantity(1, 1).Equal(decimal.RequireFromString("17.5")))
	assert.True(t, store.quantity(1, 2).Equal(qty))
	assert.Equal(t, fmt.Sprintf(
		"Product transferred successfully. "+
			"Source Warehouse (1) now has %s units of product 1. "+
			"Destination Warehouse (2) now has %s units of product 1.",
		"17.5", "2.5",
	), resp.Message)
}
