package repository

import (
	"context"

	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia CRUD para productos.
type ProductRepository interface {
	// GetAll lista todos los productos ordenados por nombre.
	GetAll(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
