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

// ProductUseCase casos de uso CRUD para productos. Validación de presencia
// solamente (el nombre es requerido); sin invariantes adicionales.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: el producto es requerido", domain.ErrValidation)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es requerido", domain.ErrValidation)
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ProductNotFound(id)
	}
	return toProductResponse(product), nil
}

// List lista todos los productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update reemplaza los datos del producto (PUT).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in == nil || in.Name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es requerido", domain.ErrValidation)
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ProductNotFound(id)
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ProductNotFound(id)
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
