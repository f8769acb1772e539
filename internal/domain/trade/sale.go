package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopstack/backend/internal/domain/shared"
)

// Sale is a customer invoice. BalanceAmount is always total minus paid;
// the column exists for query-side aggregation and is recomputed on
// every write through Recalculate.
type Sale struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	InvoiceNumber  string          `gorm:"column:invoice_number;size:50;uniqueIndex;not null" json:"invoice_number"`
	CustomerID     *uuid.UUID      `gorm:"column:customer_id;type:uuid" json:"customer_id,omitempty"`
	WarehouseID    uuid.UUID       `gorm:"column:warehouse_id;type:uuid;not null" json:"warehouse_id"`
	InvoiceDate    time.Time       `gorm:"column:invoice_date;not null" json:"invoice_date"`
	DueDate        *time.Time      `gorm:"column:due_date" json:"due_date,omitempty"`
	SubTotal       decimal.Decimal `gorm:"column:sub_total;type:decimal(20,4);default:0" json:"sub_total"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:decimal(20,4);default:0" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:decimal(20,4);default:0" json:"total_amount"`
	PaidAmount     decimal.Decimal `gorm:"column:paid_amount;type:decimal(20,4);default:0" json:"paid_amount"`
	BalanceAmount  decimal.Decimal `gorm:"column:balance_amount;type:decimal(20,4);default:0" json:"balance_amount"`
	Status         InvoiceStatus   `gorm:"column:status;size:20;default:pending" json:"status"`
	Note           string          `gorm:"column:note;type:text" json:"note,omitempty"`
	Items          []SaleItem      `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	CreatedAt      time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a line on a sale invoice.
// Total = quantity*unit_price - discount + tax, set by Recalculate.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SaleID    uuid.UUID       `gorm:"column:sale_id;type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index" json:"product_id"`
	Quantity  decimal.Decimal `gorm:"column:quantity;type:decimal(20,4);not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(20,4);not null" json:"unit_price"`
	Discount  decimal.Decimal `gorm:"column:discount;type:decimal(20,4);default:0" json:"discount"`
	Tax       decimal.Decimal `gorm:"column:tax;type:decimal(20,4);default:0" json:"tax"`
	Total     decimal.Decimal `gorm:"column:total;type:decimal(20,4);not null" json:"total"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (SaleItem) TableName() string {
	return "sale_items"
}

// Recalculate derives line totals, sub total, total, balance and status
// from the items and the paid amount. Cancelled and draft invoices keep
// their status.
func (s *Sale) Recalculate() {
	sub := decimal.Zero
	for i := range s.Items {
		it := &s.Items[i]
		it.Total = it.Quantity.Mul(it.UnitPrice).Sub(it.Discount).Add(it.Tax)
		sub = sub.Add(it.Total)
	}
	s.SubTotal = sub
	s.TotalAmount = sub.Sub(s.DiscountAmount)
	s.BalanceAmount = s.TotalAmount.Sub(s.PaidAmount)
	if s.Status != StatusCancelled && s.Status != StatusDraft {
		s.Status = DeriveStatus(s.TotalAmount, s.PaidAmount)
	}
}

func (s *Sale) Validate() error {
	if strings.TrimSpace(s.InvoiceNumber) == "" {
		return shared.NewValidationError("invoice_number", "is required")
	}
	if s.WarehouseID == uuid.Nil {
		return shared.NewValidationError("warehouse_id", "is required")
	}
	if s.InvoiceDate.IsZero() {
		return shared.NewValidationError("invoice_date", "is required")
	}
	if !s.Status.IsValid() {
		return shared.NewValidationError("status", "is not a valid invoice status")
	}
	if s.DiscountAmount.IsNegative() {
		return shared.NewValidationError("discount_amount", "cannot be negative")
	}
	if err := validateAmounts(s.TotalAmount, s.PaidAmount); err != nil {
		return err
	}
	for _, item := range s.Items {
		if item.ProductID == uuid.Nil {
			return shared.NewValidationError("items.product_id", "is required")
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return shared.NewValidationError("items.quantity", "must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return shared.NewValidationError("items.unit_price", "cannot be negative")
		}
		if item.Discount.IsNegative() {
			return shared.NewValidationError("items.discount", "cannot be negative")
		}
		if item.Tax.IsNegative() {
			return shared.NewValidationError("items.tax", "cannot be negative")
		}
	}
	return nil
}

// Cancel marks the invoice cancelled, removing it from all monetary
// aggregates.
func (s *Sale) Cancel() error {
	if s.Status == StatusCancelled {
		return shared.ErrInvalidState
	}
	s.Status = StatusCancelled
	return nil
}
