package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/catalog"
	"github.com/shopstack/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product. The SKU must be unique.
func (s *ProductService) Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindBySKU(ctx, product.SKU)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List retrieves a page of products
func (s *ProductService) List(ctx context.Context, query catalog.ListQuery) ([]catalog.Product, int64, error) {
	return s.productRepo.List(ctx, query)
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, update *catalog.Product) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.SKU != product.SKU {
		existing, err := s.productRepo.FindBySKU(ctx, update.SKU)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
		}
	}

	product.Name = update.Name
	product.SKU = update.SKU
	product.CategoryID = update.CategoryID
	product.UnitID = update.UnitID
	product.PurchasePrice = update.PurchasePrice
	product.SalePrice = update.SalePrice
	product.MinimumStockLevel = update.MinimumStockLevel
	product.Description = update.Description
	product.IsActive = update.IsActive

	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
