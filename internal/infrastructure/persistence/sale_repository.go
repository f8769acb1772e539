package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/domain/shared"
	"github.com/shopstack/backend/internal/domain/trade"
)

var saleListSortFields = report.NewSortFieldMap(map[string]string{
	"date":           "sales.invoice_date",
	"invoice_number": "sales.invoice_number",
	"total":          "sales.total_amount",
	"created_at":     "sales.created_at",
}, "date", "DESC")

// GormSaleRepository implements trade.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create persists the invoice and its items in one transaction.
func (r *GormSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sale).Error
	})
}

// Update saves the invoice header and replaces its items.
func (r *GormSaleRepository) Update(ctx context.Context, sale *trade.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&trade.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Save(sale).Error
	})
}

func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&trade.SaleItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&trade.Sale{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindByInvoiceNumber(ctx context.Context, number string) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&sale, "invoice_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

func (r *GormSaleRepository) List(ctx context.Context, query trade.ListQuery) ([]trade.Sale, int64, error) {
	q := r.db.WithContext(ctx).Model(&trade.Sale{})

	if query.Status != nil {
		q = q.Where("sales.status = ?", string(*query.Status))
	}
	if query.WarehouseID != nil {
		q = q.Where("sales.warehouse_id = ?", *query.WarehouseID)
	}
	if query.Search != "" {
		q = q.Where("LOWER(sales.invoice_number) LIKE ?", searchPattern(query.Search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []trade.Sale
	err := q.Order(saleListSortFields.Resolve(query.SortBy, query.SortDir)).
		Offset(listOffset(query.Page, query.PerPage)).
		Limit(listLimit(query.PerPage)).
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// NextInvoiceNumber issues a sequential invoice number.
func (r *GormSaleRepository) NextInvoiceNumber(ctx context.Context) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.Sale{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%06d", count+1), nil
}

var _ trade.SaleRepository = (*GormSaleRepository)(nil)
