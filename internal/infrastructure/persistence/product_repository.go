package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/catalog"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/domain/shared"
)

var productSortFields = report.NewSortFieldMap(map[string]string{
	"name":           "products.name",
	"sku":            "products.sku",
	"purchase_price": "products.purchase_price",
	"sale_price":     "products.sale_price",
	"created_at":     "products.created_at",
}, "name", "ASC")

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) List(ctx context.Context, query catalog.ListQuery) ([]catalog.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&catalog.Product{})

	if query.Search != "" {
		pattern := searchPattern(query.Search)
		q = q.Where("LOWER(products.name) LIKE ? OR LOWER(products.sku) LIKE ?", pattern, pattern)
	}
	if query.CategoryID != nil {
		q = q.Where("products.category_id = ?", *query.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalog.Product
	err := q.Order(productSortFields.Resolve(query.SortBy, query.SortDir)).
		Offset(listOffset(query.Page, query.PerPage)).
		Limit(listLimit(query.PerPage)).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error
	return count, err
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

func listOffset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * listLimit(perPage)
}

func listLimit(perPage int) int {
	if perPage <= 0 {
		return report.DefaultPerPage
	}
	if perPage > report.MaxPerPage {
		return report.MaxPerPage
	}
	return perPage
}
