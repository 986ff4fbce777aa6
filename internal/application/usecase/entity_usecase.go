package usecase

import (
	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
)

// ExistsFunc es el predicado de existencia opcional que la creación genérica
// evalúa antes de insertar. Debe considerar registros activos e inactivos.
type ExistsFunc func() (bool, error)

// EntityUseCase implementa crear/listar genérico sobre un par entidad/DTO.
// Se instancia por par concreto (bodega, producto) con sus funciones de
// mapeo; el listado devuelve solo registros activos.
type EntityUseCase[E any, D any] struct {
	repo     repository.EntityRepository[E]
	toEntity func(D) *E
	toDTO    func(*E) D
	log      *logger.Logger
}

// NewEntityUseCase construye el servicio genérico para un par entidad/DTO.
func NewEntityUseCase[E any, D any](
	repo repository.EntityRepository[E],
	toEntity func(D) *E,
	toDTO func(*E) D,
	log *logger.Logger,
) *EntityUseCase[E, D] {
	return &EntityUseCase[E, D]{repo: repo, toEntity: toEntity, toDTO: toDTO, log: log}
}

// Create inserta un nuevo registro salvo que el predicado de existencia
// encuentre uno equivalente. exists puede ser nil para omitir la verificación.
func (uc *EntityUseCase[E, D]) Create(in D, exists ExistsFunc) dto.ServiceResponse {
	if exists != nil {
		found, err := exists()
		if err != nil {
			uc.log.Error().Err(err).Msg("verificar existencia de entidad")
			return dto.NewServiceResponse(false, 500, err.Error())
		}
		if found {
			return dto.NewServiceResponse(false, 400, "Entity already exists.")
		}
	}
	if err := uc.repo.Insert(uc.toEntity(in)); err != nil {
		uc.log.Error().Err(err).Msg("crear entidad")
		return dto.NewServiceResponse(false, 500, err.Error())
	}
	return dto.NewServiceResponse(true, 200, "Created Successfully")
}

// List devuelve los registros activos mapeados a DTO. El error de
// persistencia se devuelve al caller: una lista vacía y una consulta fallida
// son resultados distintos.
func (uc *EntityUseCase[E, D]) List() ([]D, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		uc.log.Error().Err(err).Msg("listar entidades")
		return nil, err
	}
	items := make([]D, 0, len(list))
	for _, e := range list {
		items = append(items, uc.toDTO(e))
	}
	return items, nil
}
