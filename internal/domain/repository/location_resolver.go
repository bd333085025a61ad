package repository

import (
	"context"

	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
)

// LocationResolver puerto de solo lectura del catálogo de ubicaciones.
// Resolve devuelve domain.ErrNotFound (envuelto) si el identificador no
// existe. Sin efectos secundarios.
type LocationResolver interface {
	Resolve(ctx context.Context, identifier string) (*entity.Location, error)
}
