package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/partner"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, customer *partner.Customer) (*partner.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// List retrieves a page of customers
func (s *CustomerService) List(ctx context.Context, query partner.ListQuery) ([]partner.Customer, int64, error) {
	return s.customerRepo.List(ctx, query)
}

// Update updates an existing customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, update *partner.Customer) (*partner.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = update.Name
	customer.Phone = update.Phone
	customer.Email = update.Email
	customer.Address = update.Address
	customer.IsActive = update.IsActive

	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete deletes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.customerRepo.Delete(ctx, id)
}
