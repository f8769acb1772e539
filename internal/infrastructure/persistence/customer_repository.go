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

var customerSortFields = report.NewSortFieldMap(map[string]string{
	"name":       "customers.name",
	"created_at": "customers.created_at",
}, "name", "ASC")

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *GormCustomerRepository) Update(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) List(ctx context.Context, query partner.ListQuery) ([]partner.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&partner.Customer{})

	if query.Search != "" {
		pattern := searchPattern(query.Search)
		q = q.Where("LOWER(customers.name) LIKE ? OR LOWER(customers.phone) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []partner.Customer
	err := q.Order(customerSortFields.Resolve(query.SortBy, query.SortDir)).
		Offset(listOffset(query.Page, query.PerPage)).
		Limit(listLimit(query.PerPage)).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *GormCustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&partner.Customer{}).Count(&count).Error
	return count, err
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
