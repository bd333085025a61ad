package entity

// Location describe un sitio físico y sus límites. Es una entidad de
// referencia inmutable: el catálogo la resuelve, este core nunca la crea
// ni la modifica.
type Location struct {
	Identification        string // identificador único, ej. "AMSTERDAM-001"
	MaxNumberOfWarehouses int    // tope de bodegas activas simultáneas en el sitio
	MaxCapacity           int    // tope de la suma de Capacity de las bodegas activas
}
