package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/partner"
	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/domain/shared"
)

var warehouseSortFields = report.NewSortFieldMap(map[string]string{
	"name":       "warehouses.name",
	"created_at": "warehouses.created_at",
}, "name", "ASC")

// GormWarehouseRepository implements partner.WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) Create(ctx context.Context, warehouse *partner.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *GormWarehouseRepository) Update(ctx context.Context, warehouse *partner.Warehouse) error {
	return r.db.WithContext(ctx).Save(warehouse).Error
}

func (r *GormWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Warehouse{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Warehouse, error) {
	var warehouse partner.Warehouse
	if err := r.db.WithContext(ctx).First(&warehouse, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &warehouse, nil
}

func (r *GormWarehouseRepository) List(ctx context.Context, query partner.ListQuery) ([]partner.Warehouse, int64, error) {
	q := r.db.WithContext(ctx).Model(&partner.Warehouse{})

	if query.Search != "" {
		q = q.Where("LOWER(warehouses.name) LIKE ?", searchPattern(query.Search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var warehouses []partner.Warehouse
	err := q.Order(warehouseSortFields.Resolve(query.SortBy, query.SortDir)).
		Offset(listOffset(query.Page, query.PerPage)).
		Limit(listLimit(query.PerPage)).
		Find(&warehouses).Error
	if err != nil {
		return nil, 0, err
	}
	return warehouses, total, nil
}

var _ partner.WarehouseRepository = (*GormWarehouseRepository)(nil)
