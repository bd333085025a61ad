package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Tres categorías terminales:
// Validation (entrada del caller), NotFound (precondición sobre una entidad)
// y Conflict (la operación violaría un invariante de cardinalidad/capacidad).
// La capa HTTP los mapea a 400/404/409 con errors.Is.
var (
	ErrValidation = errors.New("entrada inválida")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrConflict   = errors.New("conflicto con el estado actual")
)

// Errores específicos de bodegas (warehouses).
var (
	ErrWarehouseNil              = fmt.Errorf("%w: la bodega es requerida", ErrValidation)
	ErrWarehouseInvalidCapacity  = fmt.Errorf("%w: la capacidad debe ser mayor que cero", ErrValidation)
	ErrWarehouseInvalidStock     = fmt.Errorf("%w: el stock no puede ser negativo", ErrValidation)
	ErrWarehouseInvalidArchive   = fmt.Errorf("%w: bodega inválida para archivar", ErrValidation)
	ErrWarehouseCapacityTooSmall = fmt.Errorf("%w: la capacidad debe cubrir el stock existente", ErrValidation)
	ErrWarehouseAlreadyExists    = fmt.Errorf("%w: ya existe una bodega activa con ese business unit code", ErrConflict)
	ErrWarehouseMaxPerLocation   = fmt.Errorf("%w: número máximo de bodegas alcanzado para la ubicación", ErrConflict)
	ErrWarehouseStockImmutable   = fmt.Errorf("%w: el stock debe permanecer igual al reemplazar una bodega", ErrConflict)
	ErrLocationCapacityExceeded  = fmt.Errorf("%w: capacidad máxima de la ubicación excedida", ErrConflict)
)

// Errores de asignaciones de fulfilment.
var (
	ErrAssignMaxWarehousesPerProduct = fmt.Errorf("%w: un producto puede ser suplido por máximo 2 bodegas por tienda", ErrConflict)
	ErrAssignMaxWarehousesPerStore   = fmt.Errorf("%w: una tienda puede ser suplida por máximo 3 bodegas", ErrConflict)
	ErrAssignMaxProductsPerWarehouse = fmt.Errorf("%w: una bodega puede almacenar máximo 5 productos", ErrConflict)
)

// WarehouseNotFound construye el NotFound con el business unit code que falló.
func WarehouseNotFound(businessUnitCode string) error {
	return fmt.Errorf("%w: bodega no encontrada con business unit %s", ErrNotFound, businessUnitCode)
}

// LocationNotFound construye el NotFound para un identificador de ubicación.
func LocationNotFound(identifier string) error {
	return fmt.Errorf("%w: no existe ubicación con identificador %s", ErrNotFound, identifier)
}

// StoreNotFound construye el NotFound para una tienda.
func StoreNotFound(id string) error {
	return fmt.Errorf("%w: tienda no encontrada con id %s", ErrNotFound, id)
}

// ProductNotFound construye el NotFound para un producto.
func ProductNotFound(id string) error {
	return fmt.Errorf("%w: producto no encontrado con id %s", ErrNotFound, id)
}
