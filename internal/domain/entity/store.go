package entity

import "time"

// Store representa una tienda física. CRUD simple: sin invariantes más allá
// de la presencia del nombre. Los cambios se replican al sistema legado vía
// el gateway legacy (best effort).
type Store struct {
	ID                      string
	Name                    string
	QuantityProductsInStock int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
