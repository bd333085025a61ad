package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fulfilment-api/internal/application/dto"
	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/domain/repository"
)

// WarehouseUseCase ciclo de vida de bodegas: crear, reemplazar y archivar.
// Cada operación es una secuencia leer-validar-escribir sobre los puertos;
// las validaciones cortocircuitan en el primer fallo y en el orden documentado.
// Reemplazar nunca muta la fila activa: archiva la configuración vieja y crea
// una fila nueva con el mismo business unit code, preservando el historial.
type WarehouseUseCase struct {
	repo      repository.WarehouseRepository
	locations repository.LocationResolver
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, locations repository.LocationResolver) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, locations: locations}
}

// Create valida y crea una bodega activa nueva bajo una ubicación.
// Orden de verificación: unicidad del código → ubicación existente → tope de
// bodegas de la ubicación → capacidad > 0 → stock >= 0.
//
// El tope MaxCapacity de la ubicación NO se verifica aquí, solo en Replace.
func (uc *WarehouseUseCase) Create(ctx context.Context, in *dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if in == nil {
		return nil, domain.ErrWarehouseNil
	}

	existing, err := uc.repo.FindByBusinessUnitCode(ctx, in.BusinessUnitCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrWarehouseAlreadyExists
	}

	location, err := uc.locations.Resolve(ctx, in.Location)
	if err != nil {
		return nil, err
	}

	count, err := uc.repo.CountByLocation(ctx, location.Identification)
	if err != nil {
		return nil, err
	}
	if count >= location.MaxNumberOfWarehouses {
		return nil, domain.ErrWarehouseMaxPerLocation
	}

	if in.Capacity == nil || *in.Capacity <= 0 {
		return nil, domain.ErrWarehouseInvalidCapacity
	}
	if in.Stock == nil || *in.Stock < 0 {
		return nil, domain.ErrWarehouseInvalidStock
	}

	warehouse := &entity.Warehouse{
		BusinessUnitCode: in.BusinessUnitCode,
		Location:         in.Location,
		Capacity:         *in.Capacity,
		Stock:            *in.Stock,
		CreatedAt:        time.Now(),
		ArchivedAt:       nil,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Replace modela el cambio de configuración como archivar-la-vieja +
// crear-la-nueva bajo el mismo business unit code. El stock es inmutable en
// el reemplazo (cambiarlo sería alterar inventario físico en silencio) y la
// capacidad nueva debe seguir conteniendo el stock existente. El tope de
// capacidad de la ubicación solo se reevalúa si cambió la ubicación o la
// capacidad: si ninguna cambió, el agregado no se afecta.
func (uc *WarehouseUseCase) Replace(ctx context.Context, in *dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if in == nil || in.BusinessUnitCode == "" {
		return nil, domain.ErrWarehouseNil
	}

	existing, err := uc.repo.FindByBusinessUnitCode(ctx, in.BusinessUnitCode)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.WarehouseNotFound(in.BusinessUnitCode)
	}

	if in.Stock == nil || *in.Stock != existing.Stock {
		return nil, domain.ErrWarehouseStockImmutable
	}

	if in.Capacity == nil || *in.Capacity <= 0 {
		return nil, domain.ErrWarehouseInvalidCapacity
	}
	if *in.Capacity < existing.Stock {
		return nil, domain.ErrWarehouseCapacityTooSmall
	}

	if in.Location != existing.Location || *in.Capacity != existing.Capacity {
		location, err := uc.locations.Resolve(ctx, in.Location)
		if err != nil {
			return nil, err
		}
		total, err := uc.repo.GetTotalCapacityByLocation(ctx, location.Identification)
		if err != nil {
			return nil, err
		}
		// capacidad ajustada: total actual - capacidad vieja + capacidad nueva
		adjusted := total - existing.Capacity + *in.Capacity
		if adjusted > location.MaxCapacity {
			return nil, domain.ErrLocationCapacityExceeded
		}
	}

	if err := uc.Archive(ctx, existing.BusinessUnitCode); err != nil {
		return nil, err
	}

	replacement := &entity.Warehouse{
		BusinessUnitCode: in.BusinessUnitCode,
		Location:         in.Location,
		Capacity:         *in.Capacity,
		Stock:            *in.Stock,
		CreatedAt:        time.Now(),
		ArchivedAt:       nil,
	}
	if err := uc.repo.Create(ctx, replacement); err != nil {
		return nil, err
	}
	return toWarehouseResponse(replacement), nil
}

// Archive archiva (soft delete) la bodega activa con ese código. Marca la
// fila persistida, no la referencia del caller, y nunca borra: es el único
// mecanismo de archivado y garantiza la retención del historial.
func (uc *WarehouseUseCase) Archive(ctx context.Context, businessUnitCode string) error {
	if businessUnitCode == "" {
		return domain.ErrWarehouseInvalidArchive
	}

	existing, err := uc.repo.FindByBusinessUnitCode(ctx, businessUnitCode)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.WarehouseNotFound(businessUnitCode)
	}

	now := time.Now()
	existing.ArchivedAt = &now
	return uc.repo.Update(ctx, existing)
}

// List devuelve todas las unidades, archivadas incluidas (historial completo).
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(all))
	for _, w := range all {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// GetByBusinessUnitCode devuelve la unidad activa con ese código.
func (uc *WarehouseUseCase) GetByBusinessUnitCode(ctx context.Context, businessUnitCode string) (*dto.WarehouseResponse, error) {
	if businessUnitCode == "" {
		return nil, domain.ErrWarehouseNil
	}
	warehouse, err := uc.repo.FindByBusinessUnitCode(ctx, businessUnitCode)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.WarehouseNotFound(businessUnitCode)
	}
	return toWarehouseResponse(warehouse), nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
		CreatedAt:        w.CreatedAt,
		ArchivedAt:       w.ArchivedAt,
	}
}
