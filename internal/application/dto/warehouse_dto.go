package dto

import "time"

// WarehouseRequest datos de entrada para crear o reemplazar una bodega.
// Capacity y Stock son punteros para distinguir "ausente" de cero: el caso
// de uso exige capacidad presente y > 0, y stock presente y >= 0.
type WarehouseRequest struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         *int   `json:"capacity"`
	Stock            *int   `json:"stock"`
}

// WarehouseResponse representación de una bodega en respuestas.
type WarehouseResponse struct {
	BusinessUnitCode string     `json:"businessUnitCode"`
	Location         string     `json:"location"`
	Capacity         int        `json:"capacity"`
	Stock            int        `json:"stock"`
	CreatedAt        time.Time  `json:"createdAt"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"`
}
