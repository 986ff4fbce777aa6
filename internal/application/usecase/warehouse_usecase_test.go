package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
)

// fakeWarehouseRepo implementa repository.WarehouseRepository en memoria.
// failWith permite inyectar un fallo de persistencia.
type fakeWarehouseRepo struct {
	items    []*entity.Warehouse
	nextID   int64
	failWith error
}

func (r *fakeWarehouseRepo) Insert(w *entity.Warehouse) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	w.ID = r.nextID
	cp := *w
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	for _, w := range r.items {
		if w.ID == id {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByCode busca sin filtrar por IsActive, igual que el repositorio real.
func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, w := range r.items {
		if w.WarehouseCode == code {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) ListActive() ([]*entity.Warehouse, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.Warehouse
	for _, w := range r.items {
		if w.IsActive {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseCreate_Valida_CreaYRetorna200(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, testLogger())

	resp := uc.Create(dto.WarehouseDTO{WarehouseCode: "WH010", WarehouseName: "Bodega Norte"})

	require.True(t, resp.Succeeded, resp.Message)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Created Successfully", resp.Message)
	require.Len(t, repo.items, 1)
	assert.Equal(t, "WH010", repo.items[0].WarehouseCode)
	assert.True(t, repo.items[0].IsActive, "la bodega nueva debe quedar activa")
}

func TestWarehouseCreate_Validaciones(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, testLogger())

	cases := []struct {
		name    string
		in      dto.WarehouseDTO
		message string
	}{
		{
			name:    "código vacío",
			in:      dto.WarehouseDTO{WarehouseName: "Bodega"},
			message: "Warehouse code is required.",
		},
		{
			name:    "código demasiado largo",
			in:      dto.WarehouseDTO{WarehouseCode: strings.Repeat("X", 51), WarehouseName: "Bodega"},
			message: "Warehouse code cannot be longer than 50 characters.",
		},
		{
			name:    "nombre vacío",
			in:      dto.WarehouseDTO{WarehouseCode: "WH010"},
			message: "Warehouse name is required.",
		},
		{
			name:    "nombre demasiado largo",
			in:      dto.WarehouseDTO{WarehouseCode: "WH010", WarehouseName: strings.Repeat("X", 101)},
			message: "Warehouse name cannot be longer than 100 characters.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := uc.Create(tc.in)
			assert.False(t, resp.Succeeded)
			assert.Equal(t, 400, resp.StatusCode)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

// El código en el límite exacto es válido.
func TestWarehouseCreate_LongitudLimite_EsValida(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, testLogger())

	resp := uc.Create(dto.WarehouseDTO{
		WarehouseCode: strings.Repeat("C", 50),
		WarehouseName: strings.Repeat("N", 100),
	})
	assert.True(t, resp.Succeeded, resp.Message)
}

// Código repetido → 400, incluso si la bodega existente está desactivada.
func TestWarehouseCreate_CodigoDuplicado_Retorna400(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, testLogger())

	require.True(t, uc.Create(dto.WarehouseDTO{WarehouseCode: "WH010", WarehouseName: "Bodega"}).Succeeded)
	repo.items[0].IsActive = false // desactivada: el código sigue reservado

	resp := uc.Create(dto.WarehouseDTO{WarehouseCode: "WH010", WarehouseName: "Otra"})

	assert.False(t, resp.Succeeded)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "Entity already exists.", resp.Message)
	assert.Len(t, repo.items, 1, "no debe insertarse una segunda bodega")
}

// Fallo de persistencia al insertar → 500 con el error.
func TestWarehouseCreate_FalloDePersistencia_Retorna500(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, testLogger())
	repo.failWith = errors.New("connection refused")

	resp := uc.Create(dto.WarehouseDTO{WarehouseCode: "WH010", WarehouseName: "Bodega"})

	assert.False(t, resp.Succeeded)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Message, "connection refused")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

// El listado devuelve solo bodegas activas, mapeadas a DTO.
func TestWarehouseList_SoloActivas(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, testLogger())

	require.True(t, uc.Create(dto.WarehouseDTO{WarehouseCode: "WH010", WarehouseName: "Activa"}).Succeeded)
	require.True(t, uc.Create(dto.WarehouseDTO{WarehouseCode: "WH011", WarehouseName: "Desactivada"}).Succeeded)
	repo.items[1].IsActive = false

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "WH010", items[0].WarehouseCode)
	assert.Equal(t, "Activa", items[0].WarehouseName)
}

// Sin bodegas el listado devuelve una colección vacía, no un error.
func TestWarehouseList_Vacio(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, testLogger())

	items, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Un fallo de consulta se devuelve al caller: lista vacía y error son distintos.
func TestWarehouseList_FalloDeConsulta_DevuelveError(t *testing.T) {
	repo := &fakeWarehouseRepo{failWith: errors.New("timeout")}
	uc := usecase.NewWarehouseUseCase(repo, testLogger())

	items, err := uc.List()
	assert.Error(t, err)
	assert.Nil(t, items)
}
