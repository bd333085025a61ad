package repository

import (
	"context"

	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
)

// AssignmentRepository puerto de persistencia para asignaciones de fulfilment.
// Solo lectura total y append: este core nunca actualiza ni borra asignaciones.
type AssignmentRepository interface {
	GetAll(ctx context.Context) ([]*entity.FulfilmentAssignment, error)
	Create(ctx context.Context, assignment *entity.FulfilmentAssignment) error
}
