package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/catalog"
)

// ProductUnitService handles unit-of-measure operations
type ProductUnitService struct {
	unitRepo catalog.ProductUnitRepository
}

// NewProductUnitService creates a new ProductUnitService
func NewProductUnitService(unitRepo catalog.ProductUnitRepository) *ProductUnitService {
	return &ProductUnitService{unitRepo: unitRepo}
}

// Create creates a new product unit
func (s *ProductUnitService) Create(ctx context.Context, unit *catalog.ProductUnit) (*catalog.ProductUnit, error) {
	if err := unit.Validate(); err != nil {
		return nil, err
	}
	if unit.ID == uuid.Nil {
		unit.ID = uuid.New()
	}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// GetByID retrieves a product unit by ID
func (s *ProductUnitService) GetByID(ctx context.Context, id uuid.UUID) (*catalog.ProductUnit, error) {
	return s.unitRepo.FindByID(ctx, id)
}

// List retrieves a page of product units
func (s *ProductUnitService) List(ctx context.Context, query catalog.ListQuery) ([]catalog.ProductUnit, int64, error) {
	return s.unitRepo.List(ctx, query)
}

// Update updates an existing product unit
func (s *ProductUnitService) Update(ctx context.Context, id uuid.UUID, update *catalog.ProductUnit) (*catalog.ProductUnit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unit.Name = update.Name
	unit.ShortName = update.ShortName

	if err := unit.Validate(); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// Delete deletes a product unit
func (s *ProductUnitService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.unitRepo.Delete(ctx, id)
}
