package entity

import "time"

// Warehouse representa la configuración de una unidad física de almacenamiento
// en un momento dado. El BusinessUnitCode es el identificador externo estable:
// puede haber muchas filas archivadas con el mismo código (el historial de esa
// unidad), pero a lo sumo una fila activa (ArchivedAt == nil).
type Warehouse struct {
	BusinessUnitCode string
	Location         string // identificador de la ubicación (Location.Identification)
	Capacity         int
	Stock            int
	CreatedAt        time.Time
	ArchivedAt       *time.Time // nil = activa; no-nil = archivada (soft delete)
}

// IsActive indica si esta fila es la configuración vigente de la unidad.
func (w *Warehouse) IsActive() bool {
	return w.ArchivedAt == nil
}
