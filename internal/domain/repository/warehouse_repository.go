package repository

import (
	"context"

	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para bodegas. Los casos de uso
// son lógica de decisión pura: todo invariante que requiera serialización
// bajo concurrencia (una sola fila activa por código, topes por ubicación)
// se garantiza en la frontera de persistencia (índice único parcial sobre
// business_unit_code WHERE archived_at IS NULL; ver migrations/).
type WarehouseRepository interface {
	// GetAll devuelve todas las filas, archivadas incluidas (historial completo).
	GetAll(ctx context.Context) ([]*entity.Warehouse, error)

	// Create inserta una fila nueva. No verifica unicidad: eso es
	// responsabilidad del caso de uso (y del índice parcial en la BD).
	Create(ctx context.Context, warehouse *entity.Warehouse) error

	// Update reemplaza la fila activa que coincida por BusinessUnitCode.
	// Devuelve domain.ErrNotFound (envuelto) si no hay fila activa.
	Update(ctx context.Context, warehouse *entity.Warehouse) error

	// FindByBusinessUnitCode devuelve solo la fila activa, o nil si no hay
	// ninguna activa con ese código (las archivadas se excluyen siempre).
	FindByBusinessUnitCode(ctx context.Context, code string) (*entity.Warehouse, error)

	// CountByLocation cuenta las bodegas activas en la ubicación.
	CountByLocation(ctx context.Context, location string) (int, error)

	// GetTotalCapacityByLocation suma Capacity de las bodegas activas en la ubicación.
	GetTotalCapacityByLocation(ctx context.Context, location string) (int, error)
}
