package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
)

// ProductUseCase crea productos con su stock inicial y consulta las filas
// de unión por código de producto y/o bodega.
type ProductUseCase struct {
	generic    *EntityUseCase[entity.Product, dto.ProductDTO]
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	stock      repository.StockRepository
	txRunner   TxRunner
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	stock repository.StockRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *ProductUseCase {
	generic := NewEntityUseCase(products, toProductEntity, toProductDTO, log)
	return &ProductUseCase{
		generic:    generic,
		products:   products,
		warehouses: warehouses,
		stock:      stock,
		txRunner:   txRunner,
		log:        log,
	}
}

// CreateProduct valida la entrada, verifica la unicidad del código y resuelve
// la bodega; luego inserta el producto y su fila de stock inicial en UNA sola
// transacción, de modo que un fallo intermedio no deje un producto huérfano.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) dto.ServiceResponse {
	if resp := validateProduct(in); !resp.Succeeded {
		return resp
	}

	existing, err := uc.products.GetByCode(in.ProductCode)
	if err != nil {
		uc.log.Error().Err(err).Str("product_code", in.ProductCode).Msg("buscar producto por código")
		return dto.NewServiceResponse(false, 500, fmt.Sprintf("An error occurred: %v", err))
	}
	if existing != nil {
		return dto.NewServiceResponse(false, 400, "Product code must be unique.")
	}

	warehouse, err := uc.warehouses.GetByCode(in.WarehouseCode)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_code", in.WarehouseCode).Msg("buscar bodega por código")
		return dto.NewServiceResponse(false, 500, fmt.Sprintf("An error occurred: %v", err))
	}
	if warehouse == nil {
		return dto.NewServiceResponse(false, 404, "Warehouse not found.")
	}

	product := &entity.Product{
		ProductCode:        in.ProductCode,
		ProductQuantity:    in.ProductQuantity,
		ProductDescription: in.ProductDescription,
		IsActive:           true,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Insert(product); err != nil {
			return err
		}
		return stockRepo.Upsert(&entity.ProductWarehouse{
			ProductID:   product.ID,
			WarehouseID: warehouse.ID,
			Quantity:    in.ProductQuantity,
			IsActive:    true,
		})
	})
	if err != nil {
		uc.log.Error().Err(err).Str("product_code", in.ProductCode).Msg("crear producto")
		return dto.NewServiceResponse(false, 500, fmt.Sprintf("An error occurred: %v", err))
	}
	return dto.NewServiceResponse(true, 200, "Product created and stored in Warehouse successfully.")
}

// Search devuelve las filas de stock que cumplen todos los filtros provistos
// (semántica AND); filtros vacíos no restringen.
func (uc *ProductUseCase) Search(productCode, warehouseCode string) ([]dto.ProductWarehouseDTO, error) {
	rows, err := uc.stock.Search(productCode, warehouseCode)
	if err != nil {
		uc.log.Error().Err(err).Msg("buscar stock")
		return nil, err
	}
	items := make([]dto.ProductWarehouseDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProductWarehouseDTO{
			ProductCode:   r.ProductCode,
			WarehouseCode: r.WarehouseCode,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
		})
	}
	return items, nil
}

// List devuelve los productos activos.
func (uc *ProductUseCase) List() ([]dto.ProductDTO, error) {
	return uc.generic.List()
}

func validateProduct(in dto.CreateProductRequest) dto.ServiceResponse {
	if in.ProductCode == "" {
		return dto.NewServiceResponse(false, 400, "Product code is required.")
	}
	if len(in.ProductCode) > 100 {
		return dto.NewServiceResponse(false, 400, "Product code cannot be longer than 100 characters.")
	}
	if !in.ProductQuantity.GreaterThan(decimal.Zero) {
		return dto.NewServiceResponse(false, 400, "Product quantity must be greater than 0.")
	}
	if len(in.ProductDescription) > 500 {
		return dto.NewServiceResponse(false, 400, "Product description cannot be longer than 500 characters.")
	}
	return dto.NewServiceResponse(true, 200, "Product is valid.")
}

func toProductEntity(in dto.ProductDTO) *entity.Product {
	return &entity.Product{
		ProductCode:        in.ProductCode,
		ProductQuantity:    in.ProductQuantity,
		ProductDescription: in.ProductDescription,
		IsActive:           true,
	}
}

func toProductDTO(p *entity.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ProductCode:        p.ProductCode,
		ProductQuantity:    p.ProductQuantity,
		ProductDescription: p.ProductDescription,
	}
}
