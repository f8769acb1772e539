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

var purchaseListSortFields = report.NewSortFieldMap(map[string]string{
	"date":           "purchases.invoice_date",
	"invoice_number": "purchases.invoice_number",
	"total":          "purchases.total_amount",
	"created_at":     "purchases.created_at",
}, "date", "DESC")

// GormPurchaseRepository implements trade.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// Create persists the invoice and its items in one transaction.
func (r *GormPurchaseRepository) Create(ctx context.Context, purchase *trade.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(purchase).Error
	})
}

// Update saves the invoice header and replaces its items.
func (r *GormPurchaseRepository) Update(ctx context.Context, purchase *trade.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_id = ?", purchase.ID).Delete(&trade.PurchaseItem{}).Error; err != nil {
			return err
		}
		return tx.Save(purchase).Error
	})
}

func (r *GormPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_id = ?", id).Delete(&trade.PurchaseItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&trade.Purchase{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	var purchase trade.Purchase
	if err := r.db.WithContext(ctx).Preload("Items").First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *GormPurchaseRepository) FindByInvoiceNumber(ctx context.Context, number string) (*trade.Purchase, error) {
	var purchase trade.Purchase
	if err := r.db.WithContext(ctx).Preload("Items").First(&purchase, "invoice_number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *GormPurchaseRepository) List(ctx context.Context, query trade.ListQuery) ([]trade.Purchase, int64, error) {
	q := r.db.WithContext(ctx).Model(&trade.Purchase{})

	if query.Status != nil {
		q = q.Where("purchases.status = ?", string(*query.Status))
	}
	if query.WarehouseID != nil {
		q = q.Where("purchases.warehouse_id = ?", *query.WarehouseID)
	}
	if query.Search != "" {
		q = q.Where("LOWER(purchases.invoice_number) LIKE ?", searchPattern(query.Search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var purchases []trade.Purchase
	err := q.Order(purchaseListSortFields.Resolve(query.SortBy, query.SortDir)).
		Offset(listOffset(query.Page, query.PerPage)).
		Limit(listLimit(query.PerPage)).
		Find(&purchases).Error
	if err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

// NextInvoiceNumber issues a sequential invoice number.
func (r *GormPurchaseRepository) NextInvoiceNumber(ctx context.Context) (string, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&trade.Purchase{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("PUR-%06d", count+1), nil
}

var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
