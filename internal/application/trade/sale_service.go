package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopstack/backend/internal/domain/inventory"
	"github.com/shopstack/backend/internal/domain/shared"
	"github.com/shopstack/backend/internal/domain/trade"
)

// SaleService handles sale invoice operations. Capturing an invoice
// moves stock out of the warehouse; cancelling or deleting it moves the
// stock back.
type SaleService struct {
	saleRepo  trade.SaleRepository
	stockRepo inventory.StockRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleRepository, stockRepo inventory.StockRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo, stockRepo: stockRepo}
}

// Create captures a new sale invoice. Totals, balance and status are
// derived from the items before validation; the invoice number is
// generated when the caller leaves it blank.
func (s *SaleService) Create(ctx context.Context, sale *trade.Sale) (*trade.Sale, error) {
	if sale.InvoiceNumber == "" {
		number, err := s.saleRepo.NextInvoiceNumber(ctx)
		if err != nil {
			return nil, err
		}
		sale.InvoiceNumber = number
	} else {
		existing, err := s.saleRepo.FindByInvoiceNumber(ctx, sale.InvoiceNumber)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Sale with this invoice number already exists")
		}
	}

	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	for i := range sale.Items {
		if sale.Items[i].ID == uuid.Nil {
			sale.Items[i].ID = uuid.New()
		}
		sale.Items[i].SaleID = sale.ID
	}

	sale.Recalculate()
	if err := sale.Validate(); err != nil {
		return nil, err
	}

	// Stock leaves the warehouse first so an insufficient-stock error
	// surfaces before the invoice is written.
	if sale.Status != trade.StatusDraft {
		if err := s.applyStock(ctx, sale, decimal.NewFromInt(-1)); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetByID retrieves a sale invoice with its items
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	return s.saleRepo.FindByID(ctx, id)
}

// List retrieves a page of sale invoices
func (s *SaleService) List(ctx context.Context, query trade.ListQuery) ([]trade.Sale, int64, error) {
	return s.saleRepo.List(ctx, query)
}

// Update replaces the mutable fields and items of a sale invoice. Stock
// is reconciled against the previous item set.
func (s *SaleService) Update(ctx context.Context, id uuid.UUID, update *trade.Sale) (*trade.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status == trade.StatusCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Cancelled invoices cannot be edited")
	}

	previousItems := sale.Items
	previouslyCommitted := sale.Status != trade.StatusDraft

	sale.CustomerID = update.CustomerID
	sale.WarehouseID = update.WarehouseID
	sale.InvoiceDate = update.InvoiceDate
	sale.DueDate = update.DueDate
	sale.DiscountAmount = update.DiscountAmount
	sale.PaidAmount = update.PaidAmount
	sale.Note = update.Note
	sale.Items = update.Items
	// Cancellation only goes through Cancel, which returns stock.
	if update.Status != "" && update.Status != trade.StatusCancelled {
		sale.Status = update.Status
	}
	for i := range sale.Items {
		if sale.Items[i].ID == uuid.Nil {
			sale.Items[i].ID = uuid.New()
		}
		sale.Items[i].SaleID = sale.ID
	}

	sale.Recalculate()
	if err := sale.Validate(); err != nil {
		return nil, err
	}

	if previouslyCommitted {
		if err := s.applyItemStock(ctx, sale.WarehouseID, previousItems, decimal.NewFromInt(1)); err != nil {
			return nil, err
		}
	}
	if sale.Status != trade.StatusDraft {
		if err := s.applyStock(ctx, sale, decimal.NewFromInt(-1)); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Cancel marks a sale invoice cancelled and returns its stock.
func (s *SaleService) Cancel(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasCommitted := sale.Status != trade.StatusDraft
	if err := sale.Cancel(); err != nil {
		return nil, err
	}
	if wasCommitted {
		if err := s.applyStock(ctx, sale, decimal.NewFromInt(1)); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a sale invoice, returning stock for invoices that had
// committed it.
func (s *SaleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if sale.Status != trade.StatusDraft && sale.Status != trade.StatusCancelled {
		if err := s.applyStock(ctx, sale, decimal.NewFromInt(1)); err != nil {
			return err
		}
	}
	return s.saleRepo.Delete(ctx, id)
}

func (s *SaleService) applyStock(ctx context.Context, sale *trade.Sale, sign decimal.Decimal) error {
	return s.applyItemStock(ctx, sale.WarehouseID, sale.Items, sign)
}

func (s *SaleService) applyItemStock(ctx context.Context, warehouseID uuid.UUID, items []trade.SaleItem, sign decimal.Decimal) error {
	for _, item := range items {
		delta := item.Quantity.Mul(sign)
		if err := s.stockRepo.AdjustQuantity(ctx, item.ProductID, warehouseID, delta); err != nil {
			return err
		}
	}
	return nil
}
