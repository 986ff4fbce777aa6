package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
)

// OrderUseCase ejecuta traslados de stock entre bodegas de forma
// transaccional y lista las órdenes históricas.
type OrderUseCase struct {
	txRunner TxRunner
	orders   repository.OrderRepository
	log      *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, orders repository.OrderRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orders: orders, log: log}
}

// TransferProduct mueve la cantidad indicada del producto desde la bodega
// origen hacia la destino y registra la orden, todo en una transacción.
// La fila de origen se bloquea (SELECT FOR UPDATE) para que traslados
// concurrentes sobre el mismo par producto-bodega se serialicen; si el
// destino no tiene fila de unión, se crea con la cantidad trasladada.
// La operación no es idempotente: repetirla genera otra orden y otro cambio
// de cantidades.
func (uc *OrderUseCase) TransferProduct(ctx context.Context, in dto.CreateOrderRequest) dto.ServiceResponse {
	if in.SourceWarehouseID == in.DestinationWarehouseID {
		return dto.NewServiceResponse(false, 400, "Source and destination warehouses cannot be the same.")
	}
	if !in.ProductQuantity.GreaterThan(decimal.Zero) {
		return dto.NewServiceResponse(false, 400, "Product quantity must be a positive value.")
	}

	var newSourceQty, newDestinationQty decimal.Decimal
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		source, err := stockRepo.GetForUpdate(in.ProductID, in.SourceWarehouseID)
		if err != nil {
			return err
		}
		// Fila ausente equivale a cantidad cero: también es stock insuficiente.
		if source.Quantity.LessThan(in.ProductQuantity) {
			return domain.ErrInsufficientStock
		}
		destination, err := stockRepo.Get(in.ProductID, in.DestinationWarehouseID)
		if err != nil {
			return err
		}

		source.Quantity = source.Quantity.Sub(in.ProductQuantity)
		destination.Quantity = destination.Quantity.Add(in.ProductQuantity)
		if err := stockRepo.Upsert(source); err != nil {
			return err
		}
		if err := stockRepo.Upsert(destination); err != nil {
			return err
		}

		if err := orderRepo.Create(&entity.Order{
			TransactionID:          uuid.New().String(),
			ProductID:              in.ProductID,
			SourceWarehouseID:      in.SourceWarehouseID,
			DestinationWarehouseID: in.DestinationWarehouseID,
			ProductQuantity:        in.ProductQuantity,
			OrderDate:              time.Now().UTC(),
			IsActive:               true,
		}); err != nil {
			return err
		}

		newSourceQty = source.Quantity
		newDestinationQty = destination.Quantity
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return dto.NewServiceResponse(false, 400, fmt.Sprintf(
				"Insufficient stock for product %d in warehouse %d.",
				in.ProductID, in.SourceWarehouseID,
			))
		}
		uc.log.Error().Err(err).
			Int64("product_id", in.ProductID).
			Int64("source_warehouse_id", in.SourceWarehouseID).
			Int64("destination_warehouse_id", in.DestinationWarehouseID).
			Msg("traslado de stock fallido")
		return dto.NewServiceResponse(false, 500, fmt.Sprintf("An error occurred: %v", err))
	}

	return dto.NewServiceResponse(true, 200, fmt.Sprintf(
		"Product transferred successfully. "+
			"Source Warehouse (%d) now has %s units of product %d. "+
			"Destination Warehouse (%d) now has %s units of product %d.",
		in.SourceWarehouseID, newSourceQty, in.ProductID,
		in.DestinationWarehouseID, newDestinationQty, in.ProductID,
	))
}

// GetAllOrders devuelve todas las órdenes con nombres de producto y bodegas
// resueltos y las cantidades actuales de las filas de unión involucradas.
func (uc *OrderUseCase) GetAllOrders() ([]dto.OrderDTO, error) {
	rows, err := uc.orders.ListWithDetails()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar órdenes")
		return nil, err
	}
	orders := make([]dto.OrderDTO, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, dto.OrderDTO{
			SourceWarehouseName:             r.SourceWarehouseName,
			DestinationWarehouseName:        r.DestinationWarehouseName,
			ProductName:                     r.ProductName,
			ProductQuantityOrdered:          r.ProductQuantityOrdered,
			NewSourceWarehouseQuantity:      r.NewSourceQuantity,
			NewDestinationWarehouseQuantity: r.NewDestinationQuantity,
		})
	}
	return orders, nil
}
