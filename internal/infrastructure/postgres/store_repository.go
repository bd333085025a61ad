package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

// GetAll lista todas las tiendas ordenadas por nombre.
func (r *StoreRepo) GetAll(ctx context.Context) ([]*entity.Store, error) {
	query := `
		SELECT id, name, quantity_products_in_stock, created_at, updated_at
		FROM stores ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.QuantityProductsInStock, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID devuelve la tienda o nil si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	query := `
		SELECT id, name, quantity_products_in_stock, created_at, updated_at
		FROM stores WHERE id = $1`
	var s entity.Store
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.QuantityProductsInStock, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Create persiste una tienda nueva. El nombre es único (constraint en BD).
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, quantity_products_in_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		store.ID, store.Name, store.QuantityProductsInStock, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe una tienda con ese nombre", domain.ErrConflict)
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// Update actualiza una tienda existente.
func (r *StoreRepo) Update(ctx context.Context, store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, quantity_products_in_stock = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		store.ID, store.Name, store.QuantityProductsInStock, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe una tienda con ese nombre", domain.ErrConflict)
		}
		return fmt.Errorf("update store: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.StoreNotFound(store.ID)
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
