package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopstack/backend/internal/domain/shared"
)

// Purchase is a supplier invoice. It mirrors Sale with a supplier party.
type Purchase struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	InvoiceNumber  string          `gorm:"column:invoice_number;size:50;uniqueIndex;not null" json:"invoice_number"`
	SupplierID     *uuid.UUID      `gorm:"column:supplier_id;type:uuid" json:"supplier_id,omitempty"`
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
	Items          []PurchaseItem  `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
	CreatedAt      time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is a line on a purchase invoice.
type PurchaseItem struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PurchaseID uuid.UUID       `gorm:"column:purchase_id;type:uuid;not null;index" json:"purchase_id"`
	ProductID  uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index" json:"product_id"`
	Quantity   decimal.Decimal `gorm:"column:quantity;type:decimal(20,4);not null" json:"quantity"`
	UnitCost   decimal.Decimal `gorm:"column:unit_cost;type:decimal(20,4);not null" json:"unit_cost"`
	Total      decimal.Decimal `gorm:"column:total;type:decimal(20,4);not null" json:"total"`
	CreatedAt  time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// Recalculate derives line totals, sub total, total, balance and status
// from the items and the paid amount. Cancelled and draft invoices keep
// their status.
func (p *Purchase) Recalculate() {
	sub := decimal.Zero
	for i := range p.Items {
		it := &p.Items[i]
		it.Total = it.Quantity.Mul(it.UnitCost)
		sub = sub.Add(it.Total)
	}
	p.SubTotal = sub
	p.TotalAmount = sub.Sub(p.DiscountAmount)
	p.BalanceAmount = p.TotalAmount.Sub(p.PaidAmount)
	if p.Status != StatusCancelled && p.Status != StatusDraft {
		p.Status = DeriveStatus(p.TotalAmount, p.PaidAmount)
	}
}

func (p *Purchase) Validate() error {
	if strings.TrimSpace(p.InvoiceNumber) == "" {
		return shared.NewValidationError("invoice_number", "is required")
	}
	if p.WarehouseID == uuid.Nil {
		return shared.NewValidationError("warehouse_id", "is required")
	}
	if p.InvoiceDate.IsZero() {
		return shared.NewValidationError("invoice_date", "is required")
	}
	if !p.Status.IsValid() {
		return shared.NewValidationError("status", "is not a valid invoice status")
	}
	if p.DiscountAmount.IsNegative() {
		return shared.NewValidationError("discount_amount", "cannot be negative")
	}
	if err := validateAmounts(p.TotalAmount, p.PaidAmount); err != nil {
		return err
	}
	for _, item := range p.Items {
		if item.ProductID == uuid.Nil {
			return shared.NewValidationError("items.product_id", "is required")
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return shared.NewValidationError("items.quantity", "must be positive")
		}
		if item.UnitCost.IsNegative() {
			return shared.NewValidationError("items.unit_cost", "cannot be negative")
		}
	}
	return nil
}

// Cancel marks the invoice cancelled.
func (p *Purchase) Cancel() error {
	if p.Status == StatusCancelled {
		return shared.ErrInvalidState
	}
	p.Status = StatusCancelled
	return nil
}
