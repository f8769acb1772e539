package trade

import (
	"context"

	"github.com/google/uuid"
)

// ListQuery carries pagination and simple filters for invoice lists.
type ListQuery struct {
	Page        int
	PerPage     int
	SortBy      string
	SortDir     string
	Search      string
	Status      *InvoiceStatus
	WarehouseID *uuid.UUID
}

// SaleRepository defines persistence operations for sale invoices
type SaleRepository interface {
	Create(ctx context.Context, sale *Sale) error
	Update(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindByInvoiceNumber(ctx context.Context, number string) (*Sale, error)
	List(ctx context.Context, query ListQuery) ([]Sale, int64, error)
	NextInvoiceNumber(ctx context.Context) (string, error)
}

// PurchaseRepository defines persistence operations for purchase invoices
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *Purchase) error
	Update(ctx context.Context, purchase *Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindByInvoiceNumber(ctx context.Context, number string) (*Purchase, error)
	List(ctx context.Context, query ListQuery) ([]Purchase, int64, error)
	NextInvoiceNumber(ctx context.Context) (string, error)
}
