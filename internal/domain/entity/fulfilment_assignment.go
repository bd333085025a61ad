package entity

import "time"

// FulfilmentAssignment declara que una bodega puede suplir un producto para
// una tienda. La tripleta (StoreID, ProductID, WarehouseBusinessUnitCode) es
// la clave natural de la relación; el caso de uso la verifica al escribir y
// la BD la respalda con un constraint único. Nunca se actualiza ni se borra.
type FulfilmentAssignment struct {
	StoreID                   string
	ProductID                 string
	WarehouseBusinessUnitCode string
	CreatedAt                 time.Time
}
