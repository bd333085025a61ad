package dto

import "time"

// CreateStoreRequest datos para crear una tienda.
type CreateStoreRequest struct {
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// UpdateStoreRequest datos para actualizar una tienda (PUT reemplaza, PATCH
// solo usa Name).
type UpdateStoreRequest struct {
	Name                    string `json:"name"`
	QuantityProductsInStock *int   `json:"quantityProductsInStock"`
}

// StoreResponse representación de una tienda.
type StoreResponse struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	QuantityProductsInStock int       `json:"quantityProductsInStock"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}
