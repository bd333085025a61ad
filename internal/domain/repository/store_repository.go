package repository

import (
	"context"

	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
)

// StoreRepository puerto de persistencia CRUD para tiendas.
type StoreRepository interface {
	// GetAll lista todas las tiendas ordenadas por nombre.
	GetAll(ctx context.Context) ([]*entity.Store, error)
	// GetByID devuelve la tienda o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) error
}
