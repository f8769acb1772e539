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

var productUnitSortFields = report.NewSortFieldMap(map[string]string{
	"name":       "product_units.name",
	"created_at": "product_units.created_at",
}, "name", "ASC")

// GormProductUnitRepository implements catalog.ProductUnitRepository using GORM
type GormProductUnitRepository struct {
	db *gorm.DB
}

// NewGormProductUnitRepository creates a new GormProductUnitRepository
func NewGormProductUnitRepository(db *gorm.DB) *GormProductUnitRepository {
	return &GormProductUnitRepository{db: db}
}

func (r *GormProductUnitRepository) Create(ctx context.Context, unit *catalog.ProductUnit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

func (r *GormProductUnitRepository) Update(ctx context.Context, unit *catalog.ProductUnit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

func (r *GormProductUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductUnit{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormProductUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductUnit, error) {
	var unit catalog.ProductUnit
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (r *GormProductUnitRepository) List(ctx context.Context, query catalog.ListQuery) ([]catalog.ProductUnit, int64, error) {
	q := r.db.WithContext(ctx).Model(&catalog.ProductUnit{})

	if query.Search != "" {
		q = q.Where("LOWER(product_units.name) LIKE ?", searchPattern(query.Search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var units []catalog.ProductUnit
	err := q.Order(productUnitSortFields.Resolve(query.SortBy, query.SortDir)).
		Offset(listOffset(query.Page, query.PerPage)).
		Limit(listLimit(query.PerPage)).
		Find(&units).Error
	if err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

var _ catalog.ProductUnitRepository = (*GormProductUnitRepository)(nil)
