package partner

import (
	"context"

	"github.com/google/uuid"
)

// ListQuery carries pagination, sorting and search for partner lists.
type ListQuery struct {
	Page    int
	PerPage int
	SortBy  string
	SortDir string
	Search  string
}

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, query ListQuery) ([]Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	List(ctx context.Context, query ListQuery) ([]Supplier, int64, error)
	Count(ctx context.Context) (int64, error)
}

// WarehouseRepository defines persistence operations for warehouses
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *Warehouse) error
	Update(ctx context.Context, warehouse *Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)
	List(ctx context.Context, query ListQuery) ([]Warehouse, int64, error)
}
