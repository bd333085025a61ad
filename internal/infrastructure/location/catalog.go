// Package location implementa el catálogo estático de ubicaciones como
// adaptador del puerto LocationResolver. Puede respaldarse por configuración
// o por un doble de test sin tocar los casos de uso.
package location

import (
	"context"

	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/domain/repository"
)

var _ repository.LocationResolver = (*Catalog)(nil)

// Catalog catálogo de ubicaciones en memoria, indexado por identificador.
type Catalog struct {
	byID map[string]entity.Location
}

// NewCatalog construye el catálogo con las ubicaciones dadas. Si la lista
// está vacía se cargan las ubicaciones por defecto del negocio.
func NewCatalog(locations []entity.Location) *Catalog {
	if len(locations) == 0 {
		locations = defaultLocations()
	}
	byID := make(map[string]entity.Location, len(locations))
	for _, loc := range locations {
		byID[loc.Identification] = loc
	}
	return &Catalog{byID: byID}
}

// Resolve devuelve la ubicación o domain.ErrNotFound si no existe.
func (c *Catalog) Resolve(_ context.Context, identifier string) (*entity.Location, error) {
	loc, ok := c.byID[identifier]
	if !ok {
		return nil, domain.LocationNotFound(identifier)
	}
	return &loc, nil
}

// defaultLocations tabla fija de sitios con sus topes (bodegas, capacidad total).
func defaultLocations() []entity.Location {
	return []entity.Location{
		{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50},
		{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
		{Identification: "AMSTERDAM-002", MaxNumberOfWarehouses: 3, MaxCapacity: 75},
		{Identification: "TILBURG-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 45},
		{Identification: "EINDHOVEN-001", MaxNumberOfWarehouses: 2, MaxCapacity: 70},
		{Identification: "VETSBY-001", MaxNumberOfWarehouses: 1, MaxCapacity: 90},
	}
}
