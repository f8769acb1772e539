package trade

import (
	"github.com/shopspring/decimal"

	"github.com/shopstack/backend/internal/domain/shared"
)

// InvoiceStatus is the payment lifecycle of a sale or purchase invoice.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "draft"
	StatusPending   InvoiceStatus = "pending"
	StatusPartial   InvoiceStatus = "partial"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPartial, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// IsSettledOrOpen reports whether the invoice counts toward monetary
// aggregates. Cancelled invoices never do.
func (s InvoiceStatus) IsSettledOrOpen() bool {
	return s != StatusCancelled
}

// DeriveStatus returns the payment status implied by the paid amount
// against the total. Cancelled is never derived, only set explicitly.
func DeriveStatus(total, paid decimal.Decimal) InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total) && total.GreaterThan(decimal.Zero):
		return StatusPaid
	case paid.GreaterThan(decimal.Zero):
		return StatusPartial
	default:
		return StatusPending
	}
}

func validateAmounts(total, paid decimal.Decimal) error {
	if total.IsNegative() {
		return shared.NewValidationError("total_amount", "cannot be negative")
	}
	if paid.IsNegative() {
		return shared.NewValidationError("paid_amount", "cannot be negative")
	}
	if paid.GreaterThan(total) {
		return shared.NewValidationError("paid_amount", "cannot exceed total amount")
	}
	return nil
}
