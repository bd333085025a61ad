package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfilment-api/internal/application/dto"
	"github.com/jhoicas/fulfilment-api/internal/application/usecase"
	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/infrastructure/location"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeWarehouseRepo simula la tabla warehouses. Guarda copias y devuelve
// copias, como haría una base de datos real: mutar lo que devuelve Find no
// afecta lo persistido hasta llamar Update.
type fakeWarehouseRepo struct {
	rows []entity.Warehouse
}

func (f *fakeWarehouseRepo) GetAll(_ context.Context) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(f.rows))
	for i := range f.rows {
		w := f.rows[i]
		out = append(out, &w)
	}
	return out, nil
}

func (f *fakeWarehouseRepo) Create(_ context.Context, warehouse *entity.Warehouse) error {
	f.rows = append(f.rows, *warehouse)
	return nil
}

func (f *fakeWarehouseRepo) Update(_ context.Context, warehouse *entity.Warehouse) error {
	for i := range f.rows {
		if f.rows[i].BusinessUnitCode == warehouse.BusinessUnitCode && f.rows[i].ArchivedAt == nil {
			f.rows[i] = *warehouse
			return nil
		}
	}
	return domain.WarehouseNotFound(warehouse.BusinessUnitCode)
}

func (f *fakeWarehouseRepo) FindByBusinessUnitCode(_ context.Context, code string) (*entity.Warehouse, error) {
	for i := range f.rows {
		if f.rows[i].BusinessUnitCode == code && f.rows[i].ArchivedAt == nil {
			w := f.rows[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) CountByLocation(_ context.Context, loc string) (int, error) {
	n := 0
	for i := range f.rows {
		if f.rows[i].Location == loc && f.rows[i].ArchivedAt == nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeWarehouseRepo) GetTotalCapacityByLocation(_ context.Context, loc string) (int, error) {
	total := 0
	for i := range f.rows {
		if f.rows[i].Location == loc && f.rows[i].ArchivedAt == nil {
			total += f.rows[i].Capacity
		}
	}
	return total, nil
}

func intPtr(n int) *int { return &n }

// newWarehouseUC prepara el caso de uso con un catálogo de ubicaciones de
// prueba: UNO admite una sola bodega, GRANDE admite varias con tope agregado.
func newWarehouseUC() (*usecase.WarehouseUseCase, *fakeWarehouseRepo) {
	repo := &fakeWarehouseRepo{}
	catalog := location.NewCatalog([]entity.Location{
		{Identification: "UNO", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "GRANDE", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
		{Identification: "MINIMA", MaxNumberOfWarehouses: 3, MaxCapacity: 10},
	})
	return usecase.NewWarehouseUseCase(repo, catalog), repo
}

func mustCreate(t *testing.T, uc *usecase.WarehouseUseCase, code, loc string, capacity, stock int) {
	t.Helper()
	_, err := uc.Create(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: code,
		Location:         loc,
		Capacity:         intPtr(capacity),
		Stock:            intPtr(stock),
	})
	require.NoError(t, err, "la creación de %s debe ser exitosa", code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateWarehouse_Exitoso(t *testing.T) {
	uc, repo := newWarehouseUC()

	out, err := uc.Create(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "MWH.001",
		Location:         "GRANDE",
		Capacity:         intPtr(50),
		Stock:            intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "MWH.001", out.BusinessUnitCode)
	assert.Equal(t, 50, out.Capacity)
	assert.Equal(t, 10, out.Stock)
	assert.Nil(t, out.ArchivedAt, "una bodega recién creada debe estar activa")
	assert.False(t, out.CreatedAt.IsZero(), "createdAt debe asignarse al crear")
	assert.Len(t, repo.rows, 1)
}

func TestCreateWarehouse_EntradaNula(t *testing.T) {
	uc, _ := newWarehouseUC()

	_, err := uc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrValidation, "una entrada nula es error de validación")
}

func TestCreateWarehouse_CodigoDuplicado(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "MWH.001", "GRANDE", 50, 10)

	_, err := uc.Create(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "MWH.001",
		Location:         "GRANDE",
		Capacity:         intPtr(20),
		Stock:            intPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrWarehouseAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict, "el duplicado activo es un conflicto")
}

func TestCreateWarehouse_UbicacionDesconocida(t *testing.T) {
	uc, _ := newWarehouseUC()

	_, err := uc.Create(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "MWH.001",
		Location:         "NO-EXISTE",
		Capacity:         intPtr(10),
		Stock:            intPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateWarehouse_TopeDeBodegasPorUbicacion(t *testing.T) {
	uc, _ := newWarehouseUC()
	// UNO admite exactamente una bodega activa.
	mustCreate(t, uc, "BU-100", "UNO", 10, 0)

	_, err := uc.Create(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-101",
		Location:         "UNO",
		Capacity:         intPtr(10),
		Stock:            intPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrWarehouseMaxPerLocation)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateWarehouse_ArchivadaLiberaElCupo(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "BU-100", "UNO", 10, 0)
	require.NoError(t, uc.Archive(context.Background(), "BU-100"))

	// Las archivadas no cuentan para el tope de la ubicación.
	mustCreate(t, uc, "BU-101", "UNO", 10, 0)
}

func TestCreateWarehouse_CapacidadInvalida(t *testing.T) {
	uc, _ := newWarehouseUC()

	for _, capacity := range []*int{nil, intPtr(0), intPtr(-5)} {
		_, err := uc.Create(context.Background(), &dto.WarehouseRequest{
			BusinessUnitCode: "MWH.001",
			Location:         "GRANDE",
			Capacity:         capacity,
			Stock:            intPtr(0),
		})
		assert.ErrorIs(t, err, domain.ErrWarehouseInvalidCapacity)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCreateWarehouse_StockInvalido(t *testing.T) {
	uc, _ := newWarehouseUC()

	for _, stock := range []*int{nil, intPtr(-1)} {
		_, err := uc.Create(context.Background(), &dto.WarehouseRequest{
			BusinessUnitCode: "MWH.001",
			Location:         "GRANDE",
			Capacity:         intPtr(10),
			Stock:            stock,
		})
		assert.ErrorIs(t, err, domain.ErrWarehouseInvalidStock)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

// Create valida el número de bodegas de la ubicación pero no su MaxCapacity;
// el tope agregado de capacidad solo se reevalúa en Replace. Este test fija
// ese comportamiento.
func TestCreateWarehouse_NoVerificaCapacidadDeUbicacion(t *testing.T) {
	uc, _ := newWarehouseUC()

	// MINIMA tiene MaxCapacity 10; una bodega de 50 la excede y aun así se crea.
	mustCreate(t, uc, "MWH.GIGANTE", "MINIMA", 50, 0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Replace
// ──────────────────────────────────────────────────────────────────────────────

func TestReplaceWarehouse_ArchivaYCreaNuevaFila(t *testing.T) {
	uc, repo := newWarehouseUC()
	mustCreate(t, uc, "BU-900", "GRANDE", 10, 5)

	out, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-900",
		Location:         "GRANDE",
		Capacity:         intPtr(20),
		Stock:            intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Capacity)
	assert.Nil(t, out.ArchivedAt)

	// Historial: la configuración vieja queda archivada, la nueva activa.
	require.Len(t, repo.rows, 2, "reemplazar nunca muta en sitio: una fila archivada y una nueva")
	var archived, active int
	for i := range repo.rows {
		if repo.rows[i].ArchivedAt != nil {
			archived++
			assert.Equal(t, 10, repo.rows[i].Capacity, "la fila archivada conserva la capacidad vieja")
		} else {
			active++
			assert.Equal(t, 20, repo.rows[i].Capacity)
		}
	}
	assert.Equal(t, 1, archived)
	assert.Equal(t, 1, active)
}

func TestReplaceWarehouse_NoExiste(t *testing.T) {
	uc, _ := newWarehouseUC()

	_, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-999",
		Location:         "GRANDE",
		Capacity:         intPtr(10),
		Stock:            intPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReplaceWarehouse_StockInmutable(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "BU-900", "GRANDE", 10, 5)

	for _, stock := range []*int{nil, intPtr(4), intPtr(6)} {
		_, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
			BusinessUnitCode: "BU-900",
			Location:         "GRANDE",
			Capacity:         intPtr(10),
			Stock:            stock,
		})
		assert.ErrorIs(t, err, domain.ErrWarehouseStockImmutable)
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
}

func TestReplaceWarehouse_CapacidadNoCubreElStock(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "BU-900", "GRANDE", 10, 5)

	_, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-900",
		Location:         "GRANDE",
		Capacity:         intPtr(3),
		Stock:            intPtr(5),
	})
	assert.ErrorIs(t, err, domain.ErrWarehouseCapacityTooSmall)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReplaceWarehouse_CapacidadDeUbicacionExcedida(t *testing.T) {
	uc, _ := newWarehouseUC()
	// GRANDE: MaxCapacity 100 con 40 + 40 usados.
	mustCreate(t, uc, "BU-1", "GRANDE", 40, 0)
	mustCreate(t, uc, "BU-2", "GRANDE", 40, 0)

	// Capacidad ajustada: 80 - 40 + 70 = 110 > 100.
	_, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-2",
		Location:         "GRANDE",
		Capacity:         intPtr(70),
		Stock:            intPtr(0),
	})
	assert.ErrorIs(t, err, domain.ErrLocationCapacityExceeded)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReplaceWarehouse_DescuentaLaCapacidadPropia(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "BU-1", "GRANDE", 40, 0)
	mustCreate(t, uc, "BU-2", "GRANDE", 40, 0)

	// 80 - 40 + 60 = 100 = MaxCapacity: justo en el tope, permitido.
	_, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-2",
		Location:         "GRANDE",
		Capacity:         intPtr(60),
		Stock:            intPtr(0),
	})
	assert.NoError(t, err, "la capacidad propia se descuenta del agregado antes de comparar")
}

func TestReplaceWarehouse_SinCambiosOmiteElTopeDeUbicacion(t *testing.T) {
	uc, _ := newWarehouseUC()
	// MINIMA (MaxCapacity 10) ya excedida: Create no verifica ese tope.
	mustCreate(t, uc, "BU-1", "MINIMA", 50, 7)

	// Misma ubicación y misma capacidad: el agregado no cambia y el tope no
	// se reevalúa, aunque ya esté violado.
	out, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-1",
		Location:         "MINIMA",
		Capacity:         intPtr(50),
		Stock:            intPtr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, out.Capacity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Archive
// ──────────────────────────────────────────────────────────────────────────────

func TestArchiveWarehouse_Exitoso(t *testing.T) {
	uc, repo := newWarehouseUC()
	mustCreate(t, uc, "BU-1", "GRANDE", 10, 0)

	require.NoError(t, uc.Archive(context.Background(), "BU-1"))

	require.Len(t, repo.rows, 1)
	assert.NotNil(t, repo.rows[0].ArchivedAt, "archivar marca la fila, no la borra")

	_, err := uc.GetByBusinessUnitCode(context.Background(), "BU-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "una bodega archivada deja de ser visible como activa")
}

func TestArchiveWarehouse_CodigoVacio(t *testing.T) {
	uc, _ := newWarehouseUC()

	err := uc.Archive(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestArchiveWarehouse_NoExiste(t *testing.T) {
	uc, _ := newWarehouseUC()

	err := uc.Archive(context.Background(), "BU-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArchiveWarehouse_YaArchivada(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "BU-1", "GRANDE", 10, 0)
	require.NoError(t, uc.Archive(context.Background(), "BU-1"))

	// La segunda vez ya no hay fila activa con ese código.
	err := uc.Archive(context.Background(), "BU-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / GetByBusinessUnitCode
// ──────────────────────────────────────────────────────────────────────────────

func TestListWarehouses_IncluyeArchivadas(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "BU-1", "GRANDE", 10, 0)
	mustCreate(t, uc, "BU-2", "GRANDE", 10, 0)
	require.NoError(t, uc.Archive(context.Background(), "BU-1"))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2, "el listado incluye el historial archivado")
}

func TestGetWarehouse_SoloActiva(t *testing.T) {
	uc, _ := newWarehouseUC()
	mustCreate(t, uc, "BU-900", "GRANDE", 10, 5)
	_, err := uc.Replace(context.Background(), &dto.WarehouseRequest{
		BusinessUnitCode: "BU-900",
		Location:         "GRANDE",
		Capacity:         intPtr(20),
		Stock:            intPtr(5),
	})
	require.NoError(t, err)

	out, err := uc.GetByBusinessUnitCode(context.Background(), "BU-900")
	require.NoError(t, err)
	assert.Equal(t, 20, out.Capacity, "tras un replace la consulta devuelve la configuración nueva")
}
