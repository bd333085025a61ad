package dto

// FulfilmentRequest petición para asignar una bodega a un par tienda/producto.
type FulfilmentRequest struct {
	StoreID                   string `json:"storeId"`
	ProductID                 string `json:"productId"`
	WarehouseBusinessUnitCode string `json:"warehouseBusinessUnitCode"`
}

// FulfilmentAssignmentResponse representación de una asignación existente.
type FulfilmentAssignmentResponse struct {
	StoreID                   string `json:"storeId"`
	ProductID                 string `json:"productId"`
	WarehouseBusinessUnitCode string `json:"warehouseBusinessUnitCode"`
}
