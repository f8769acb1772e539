package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/partner"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, supplier *partner.Supplier) (*partner.Supplier, error) {
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

// List retrieves a page of suppliers
func (s *SupplierService) List(ctx context.Context, query partner.ListQuery) ([]partner.Supplier, int64, error) {
	return s.supplierRepo.List(ctx, query)
}

// Update updates an existing supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, update *partner.Supplier) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = update.Name
	supplier.Phone = update.Phone
	supplier.Email = update.Email
	supplier.Address = update.Address
	supplier.IsActive = update.IsActive

	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, id)
}
