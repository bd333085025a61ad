package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
// Tabla append-only: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type AssignmentRepo struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository construye el adaptador de persistencia para asignaciones.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

// GetAll devuelve todas las asignaciones.
func (r *AssignmentRepo) GetAll(ctx context.Context) ([]*entity.FulfilmentAssignment, error) {
	query := `
		SELECT store_id, product_id, warehouse_business_unit_code, created_at
		FROM fulfilment_assignments ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.FulfilmentAssignment
	for rows.Next() {
		var a entity.FulfilmentAssignment
		if err := rows.Scan(&a.StoreID, &a.ProductID, &a.WarehouseBusinessUnitCode, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Create agrega una asignación.
func (r *AssignmentRepo) Create(ctx context.Context, assignment *entity.FulfilmentAssignment) error {
	query := `
		INSERT INTO fulfilment_assignments (store_id, product_id, warehouse_business_unit_code, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query,
		assignment.StoreID, assignment.ProductID, assignment.WarehouseBusinessUnitCode, assignment.CreatedAt,
	)
	if err != nil {
		// La tripleta ya existe: repetir la asignación no es un error.
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}
