package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/partner"
)

// WarehouseService handles warehouse-related business operations
type WarehouseService struct {
	warehouseRepo partner.WarehouseRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo partner.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouseRepo: warehouseRepo}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, warehouse *partner.Warehouse) (*partner.Warehouse, error) {
	if err := warehouse.Validate(); err != nil {
		return nil, err
	}
	if warehouse.ID == uuid.Nil {
		warehouse.ID = uuid.New()
	}
	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, id uuid.UUID) (*partner.Warehouse, error) {
	return s.warehouseRepo.FindByID(ctx, id)
}

// List retrieves a page of warehouses
func (s *WarehouseService) List(ctx context.Context, query partner.ListQuery) ([]partner.Warehouse, int64, error) {
	return s.warehouseRepo.List(ctx, query)
}

// Update updates an existing warehouse
func (s *WarehouseService) Update(ctx context.Context, id uuid.UUID, update *partner.Warehouse) (*partner.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	warehouse.Name = update.Name
	warehouse.Address = update.Address
	warehouse.IsActive = update.IsActive

	if err := warehouse.Validate(); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Delete deletes a warehouse
func (s *WarehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.warehouseRepo.Delete(ctx, id)
}
