package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSale() *Sale {
	return &Sale{
		ID:            uuid.New(),
		InvoiceNumber: "INV-0001",
		WarehouseID:   uuid.New(),
		InvoiceDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        StatusPending,
		Items: []SaleItem{
			{
				ProductID: uuid.New(),
				Quantity:  decimal.NewFromInt(2),
				UnitPrice: decimal.NewFromInt(60),
				Discount:  decimal.NewFromInt(10),
				Tax:       decimal.NewFromInt(5),
			},
		},
	}
}

func TestSaleRecalculate_BalanceInvariant(t *testing.T) {
	s := newSale()
	s.PaidAmount = decimal.NewFromInt(50)
	s.Recalculate()

	// line: 2*60 - 10 + 5 = 115
	assert.True(t, s.Items[0].Total.Equal(decimal.NewFromInt(115)))
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(115)))
	assert.True(t, s.BalanceAmount.Equal(s.TotalAmount.Sub(s.PaidAmount)))
	assert.Equal(t, StatusPartial, s.Status)
}

func TestSaleRecalculate_StatusDerivation(t *testing.T) {
	tests := []struct {
		name string
		paid int64
		want InvoiceStatus
	}{
		{"unpaid", 0, StatusPending},
		{"partial", 50, StatusPartial},
		{"paid in full", 115, StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSale()
			s.PaidAmount = decimal.NewFromInt(tt.paid)
			s.Recalculate()
			assert.Equal(t, tt.want, s.Status)
		})
	}
}

func TestSaleRecalculate_CancelledStatusSticks(t *testing.T) {
	s := newSale()
	require.NoError(t, s.Cancel())
	s.PaidAmount = decimal.NewFromInt(115)
	s.Recalculate()
	assert.Equal(t, StatusCancelled, s.Status)

	assert.Error(t, s.Cancel())
}

func TestSaleValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Sale)
		valid  bool
	}{
		{"valid", func(s *Sale) {}, true},
		{"missing invoice number", func(s *Sale) { s.InvoiceNumber = " " }, false},
		{"missing warehouse", func(s *Sale) { s.WarehouseID = uuid.Nil }, false},
		{"zero date", func(s *Sale) { s.InvoiceDate = time.Time{} }, false},
		{"bad status", func(s *Sale) { s.Status = "refunded" }, false},
		{"negative quantity", func(s *Sale) { s.Items[0].Quantity = decimal.NewFromInt(-1) }, false},
		{"overpaid", func(s *Sale) { s.PaidAmount = decimal.NewFromInt(999) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSale()
			s.Recalculate()
			tt.mutate(s)
			err := s.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDeriveStatus_ZeroTotal(t *testing.T) {
	assert.Equal(t, StatusPending, DeriveStatus(decimal.Zero, decimal.Zero))
}

func TestPurchaseRecalculate(t *testing.T) {
	p := &Purchase{
		InvoiceNumber: "PUR-0001",
		WarehouseID:   uuid.New(),
		InvoiceDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        StatusPending,
		Items: []PurchaseItem{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(3), UnitCost: decimal.NewFromInt(20)},
		},
		DiscountAmount: decimal.NewFromInt(5),
	}
	p.Recalculate()

	assert.True(t, p.TotalAmount.Equal(decimal.NewFromInt(55)))
	assert.True(t, p.BalanceAmount.Equal(decimal.NewFromInt(55)))
	assert.Equal(t, StatusPending, p.Status)
	require.NoError(t, p.Validate())
}
