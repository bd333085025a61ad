package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fulfilment-api/internal/application/dto"
	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/internal/domain/repository"
)

// LegacyStoreNotifier replica cambios de tiendas al sistema legado después
// de persistirlos. Es best effort: las implementaciones registran el fallo
// y nunca lo propagan, por eso los métodos no devuelven error.
type LegacyStoreNotifier interface {
	StoreCreated(store *entity.Store)
	StoreUpdated(store *entity.Store)
}

// StoreUseCase casos de uso CRUD para tiendas. Validación de presencia
// solamente; tras crear o actualizar se notifica al sistema legado.
type StoreUseCase struct {
	repo   repository.StoreRepository
	legacy LegacyStoreNotifier
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, legacy LegacyStoreNotifier) *StoreUseCase {
	return &StoreUseCase{repo: repo, legacy: legacy}
}

// Create crea una tienda nueva y la replica al sistema legado.
func (uc *StoreUseCase) Create(ctx context.Context, in *dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: la tienda es requerida", domain.ErrValidation)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre de la tienda es requerido", domain.ErrValidation)
	}
	now := time.Now()
	store := &entity.Store{
		ID:                      uuid.New().String(),
		Name:                    in.Name,
		QuantityProductsInStock: in.QuantityProductsInStock,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	uc.legacy.StoreCreated(store)
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.StoreNotFound(id)
	}
	return toStoreResponse(store), nil
}

// List lista todas las tiendas ordenadas por nombre.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return items, nil
}

// Update reemplaza nombre y stock de la tienda (PUT) y replica al legado.
func (uc *StoreUseCase) Update(ctx context.Context, id string, in *dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if in == nil || in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre de la tienda es requerido", domain.ErrValidation)
	}
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.StoreNotFound(id)
	}
	store.Name = in.Name
	if in.QuantityProductsInStock != nil {
		store.QuantityProductsInStock = *in.QuantityProductsInStock
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	uc.legacy.StoreUpdated(store)
	return toStoreResponse(store), nil
}

// Patch actualiza solo el nombre de la tienda.
func (uc *StoreUseCase) Patch(ctx context.Context, id string, in *dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if in == nil || in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre de la tienda es requerido", domain.ErrValidation)
	}
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.StoreNotFound(id)
	}
	store.Name = in.Name
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	uc.legacy.StoreUpdated(store)
	return toStoreResponse(store), nil
}

// Delete elimina una tienda por ID.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) error {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.StoreNotFound(id)
	}
	return uc.repo.Delete(ctx, id)
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:                      s.ID,
		Name:                    s.Name,
		QuantityProductsInStock: s.QuantityProductsInStock,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}
