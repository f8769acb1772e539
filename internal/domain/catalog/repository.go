package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ListQuery carries pagination, sorting and search for catalog lists.
type ListQuery struct {
	Page       int
	PerPage    int
	SortBy     string
	SortDir    string
	Search     string
	CategoryID *uuid.UUID
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	List(ctx context.Context, query ListQuery) ([]Product, int64, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context, query ListQuery) ([]Category, int64, error)
}

// ProductUnitRepository defines persistence operations for product units
type ProductUnitRepository interface {
	Create(ctx context.Context, unit *ProductUnit) error
	Update(ctx context.Context, unit *ProductUnit) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*ProductUnit, error)
	List(ctx context.Context, query ListQuery) ([]ProductUnit, int64, error)
}
