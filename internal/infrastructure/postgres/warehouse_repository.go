package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
// La unicidad de fila-activa-por-código está respaldada por el índice único
// parcial ux_warehouses_active_bu (business_unit_code WHERE archived_at IS NULL):
// bajo concurrencia, dos creates del mismo código no pueden pasar ambos.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// GetAll devuelve todas las filas, archivadas incluidas.
func (r *WarehouseRepo) GetAll(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `
		SELECT business_unit_code, location, capacity, stock, created_at, archived_at
		FROM warehouses ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt, &w.ArchivedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Create inserta una fila nueva. Una violación del índice parcial de unicidad
// (carrera entre dos creates del mismo código) se traduce a Conflict.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (business_unit_code, location, capacity, stock, created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		warehouse.BusinessUnitCode, warehouse.Location, warehouse.Capacity,
		warehouse.Stock, warehouse.CreatedAt, warehouse.ArchivedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrWarehouseAlreadyExists
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// Update reemplaza la fila activa que coincida por business unit code.
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET location = $2, capacity = $3, stock = $4, archived_at = $5
		WHERE business_unit_code = $1 AND archived_at IS NULL`
	cmd, err := r.pool.Exec(ctx, query,
		warehouse.BusinessUnitCode, warehouse.Location, warehouse.Capacity,
		warehouse.Stock, warehouse.ArchivedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.WarehouseNotFound(warehouse.BusinessUnitCode)
	}
	return nil
}

// FindByBusinessUnitCode devuelve solo la fila activa, o nil si no hay.
func (r *WarehouseRepo) FindByBusinessUnitCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	query := `
		SELECT business_unit_code, location, capacity, stock, created_at, archived_at
		FROM warehouses WHERE business_unit_code = $1 AND archived_at IS NULL`
	var w entity.Warehouse
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt, &w.ArchivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find warehouse: %w", err)
	}
	return &w, nil
}

// CountByLocation cuenta las bodegas activas en la ubicación.
func (r *WarehouseRepo) CountByLocation(ctx context.Context, location string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM warehouses WHERE location = $1 AND archived_at IS NULL`,
		location,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count warehouses by location: %w", err)
	}
	return count, nil
}

// GetTotalCapacityByLocation suma la capacidad de las bodegas activas en la ubicación.
func (r *WarehouseRepo) GetTotalCapacityByLocation(ctx context.Context, location string) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(capacity), 0) FROM warehouses WHERE location = $1 AND archived_at IS NULL`,
		location,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum capacity by location: %w", err)
	}
	return total, nil
}
