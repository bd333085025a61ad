package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fulfilment-api/internal/application/dto"
	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/domain/repository"
)

// Topes de cardinalidad del matcher de fulfilment.
const (
	maxWarehousesPerStoreProduct = 2 // bodegas distintas por par tienda/producto
	maxWarehousesPerStore        = 3 // bodegas distintas por tienda
	maxProductsPerWarehouse      = 5 // productos distintos por bodega
)

// FulfilmentUseCase asigna bodegas a pares tienda/producto bajo los tres
// topes de cardinalidad independientes. Volver a enviar una tripleta ya
// existente es un no-op exitoso, no un error.
type FulfilmentUseCase struct {
	repo repository.AssignmentRepository
}

// NewFulfilmentUseCase construye el caso de uso.
func NewFulfilmentUseCase(repo repository.AssignmentRepository) *FulfilmentUseCase {
	return &FulfilmentUseCase{repo: repo}
}

// Assign registra que la bodega puede suplir el producto para la tienda.
// Una sola pasada sobre las asignaciones existentes acumula los tres
// conjuntos de claves distintas; cada tope aplica solo a relaciones nuevas:
// si la clave entrante ya es miembro del conjunto, ese tope no puede
// violarse y queda exento.
func (uc *FulfilmentUseCase) Assign(ctx context.Context, storeID, productID, warehouseBusinessUnitCode string) error {
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return err
	}

	warehousesForPair := make(map[string]struct{})
	warehousesForStore := make(map[string]struct{})
	productsForWarehouse := make(map[string]struct{})

	for _, a := range all {
		if a.StoreID == storeID && a.ProductID == productID && a.WarehouseBusinessUnitCode == warehouseBusinessUnitCode {
			// La tripleta exacta ya existe: no-op idempotente.
			return nil
		}
		if a.StoreID == storeID && a.ProductID == productID {
			warehousesForPair[a.WarehouseBusinessUnitCode] = struct{}{}
		}
		if a.StoreID == storeID {
			warehousesForStore[a.WarehouseBusinessUnitCode] = struct{}{}
		}
		if a.WarehouseBusinessUnitCode == warehouseBusinessUnitCode {
			productsForWarehouse[a.ProductID] = struct{}{}
		}
	}

	if _, member := warehousesForPair[warehouseBusinessUnitCode]; !member && len(warehousesForPair) >= maxWarehousesPerStoreProduct {
		return domain.ErrAssignMaxWarehousesPerProduct
	}
	if _, member := warehousesForStore[warehouseBusinessUnitCode]; !member && len(warehousesForStore) >= maxWarehousesPerStore {
		return domain.ErrAssignMaxWarehousesPerStore
	}
	if _, member := productsForWarehouse[productID]; !member && len(productsForWarehouse) >= maxProductsPerWarehouse {
		return domain.ErrAssignMaxProductsPerWarehouse
	}

	return uc.repo.Create(ctx, &entity.FulfilmentAssignment{
		StoreID:                   storeID,
		ProductID:                 productID,
		WarehouseBusinessUnitCode: warehouseBusinessUnitCode,
		CreatedAt:                 time.Now(),
	})
}

// List devuelve todas las asignaciones registradas.
func (uc *FulfilmentUseCase) List(ctx context.Context) ([]dto.FulfilmentAssignmentResponse, error) {
	all, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FulfilmentAssignmentResponse, 0, len(all))
	for _, a := range all {
		items = append(items, dto.FulfilmentAssignmentResponse{
			StoreID:                   a.StoreID,
			ProductID:                 a.ProductID,
			WarehouseBusinessUnitCode: a.WarehouseBusinessUnitCode,
		})
	}
	return items, nil
}
