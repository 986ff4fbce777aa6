package usecase

import (
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
)

// WarehouseUseCase ata el servicio genérico a Warehouse con la verificación
// de unicidad por código.
type WarehouseUseCase struct {
	generic *EntityUseCase[entity.Warehouse, dto.WarehouseDTO]
	repo    repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, log *logger.Logger) *WarehouseUseCase {
	generic := NewEntityUseCase(repo, toWarehouseEntity, toWarehouseDTO, log)
	return &WarehouseUseCase{generic: generic, repo: repo}
}

// Create valida la entrada y crea la bodega si el código no está en uso
// (se consideran también bodegas desactivadas).
func (uc *WarehouseUseCase) Create(in dto.WarehouseDTO) dto.ServiceResponse {
	if in.WarehouseCode == "" {
		return dto.NewServiceResponse(false, 400, "Warehouse code is required.")
	}
	if len(in.WarehouseCode) > 50 {
		return dto.NewServiceResponse(false, 400, "Warehouse code cannot be longer than 50 characters.")
	}
	if in.WarehouseName == "" {
		return dto.NewServiceResponse(false, 400, "Warehouse name is required.")
	}
	if len(in.WarehouseName) > 100 {
		return dto.NewServiceResponse(false, 400, "Warehouse name cannot be longer than 100 characters.")
	}
	return uc.generic.Create(in, func() (bool, error) {
		existing, err := uc.repo.GetByCode(in.WarehouseCode)
		if err != nil {
			return false, err
		}
		return existing != nil, nil
	})
}

// List devuelve las bodegas activas.
func (uc *WarehouseUseCase) List() ([]dto.WarehouseDTO, error) {
	return uc.generic.List()
}

func toWarehouseEntity(in dto.WarehouseDTO) *entity.Warehouse {
	return &entity.Warehouse{
		WarehouseCode: in.WarehouseCode,
		WarehouseName: in.WarehouseName,
		IsActive:      true,
	}
}

func toWarehouseDTO(w *entity.Warehouse) dto.WarehouseDTO {
	return dto.WarehouseDTO{
		WarehouseCode: w.WarehouseCode,
		WarehouseName: w.WarehouseName,
	}
}
