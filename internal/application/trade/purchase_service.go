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

// PurchaseService handles purchase invoice operations. Capturing a
// purchase moves stock into the warehouse; cancelling or deleting it
// moves the stock back out.
type PurchaseService struct {
	purchaseRepo trade.PurchaseRepository
	stockRepo    inventory.StockRepository
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(purchaseRepo trade.PurchaseRepository, stockRepo inventory.StockRepository) *PurchaseService {
	return &PurchaseService{purchaseRepo: purchaseRepo, stockRepo: stockRepo}
}

// Create captures a new purchase invoice.
func (s *PurchaseService) Create(ctx context.Context, purchase *trade.Purchase) (*trade.Purchase, error) {
	if purchase.InvoiceNumber == "" {
		number, err := s.purchaseRepo.NextInvoiceNumber(ctx)
		if err != nil {
			return nil, err
		}
		purchase.InvoiceNumber = number
	} else {
		existing, err := s.purchaseRepo.FindByInvoiceNumber(ctx, purchase.InvoiceNumber)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Purchase with this invoice number already exists")
		}
	}

	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	for i := range purchase.Items {
		if purchase.Items[i].ID == uuid.Nil {
			purchase.Items[i].ID = uuid.New()
		}
		purchase.Items[i].PurchaseID = purchase.ID
	}

	purchase.Recalculate()
	if err := purchase.Validate(); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	if purchase.Status != trade.StatusDraft {
		if err := s.applyStock(ctx, purchase, decimal.NewFromInt(1)); err != nil {
			return nil, err
		}
	}
	return purchase, nil
}

// GetByID retrieves a purchase invoice with its items
func (s *PurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	return s.purchaseRepo.FindByID(ctx, id)
}

// List retrieves a page of purchase invoices
func (s *PurchaseService) List(ctx context.Context, query trade.ListQuery) ([]trade.Purchase, int64, error) {
	return s.purchaseRepo.List(ctx, query)
}

// Update replaces the mutable fields and items of a purchase invoice.
// Stock is reconciled against the previous item set.
func (s *PurchaseService) Update(ctx context.Context, id uuid.UUID, update *trade.Purchase) (*trade.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase.Status == trade.StatusCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Cancelled invoices cannot be edited")
	}

	previousItems := purchase.Items
	previouslyCommitted := purchase.Status != trade.StatusDraft

	purchase.SupplierID = update.SupplierID
	purchase.WarehouseID = update.WarehouseID
	purchase.InvoiceDate = update.InvoiceDate
	purchase.DueDate = update.DueDate
	purchase.DiscountAmount = update.DiscountAmount
	purchase.PaidAmount = update.PaidAmount
	purchase.Note = update.Note
	purchase.Items = update.Items
	// Cancellation only goes through Cancel, which reverses stock.
	if update.Status != "" && update.Status != trade.StatusCancelled {
		purchase.Status = update.Status
	}
	for i := range purchase.Items {
		if purchase.Items[i].ID == uuid.Nil {
			purchase.Items[i].ID = uuid.New()
		}
		purchase.Items[i].PurchaseID = purchase.ID
	}

	purchase.Recalculate()
	if err := purchase.Validate(); err != nil {
		return nil, err
	}

	if previouslyCommitted {
		if err := s.applyItemStock(ctx, purchase.WarehouseID, previousItems, decimal.NewFromInt(-1)); err != nil {
			return nil, err
		}
	}
	if purchase.Status != trade.StatusDraft {
		if err := s.applyStock(ctx, purchase, decimal.NewFromInt(1)); err != nil {
			return nil, err
		}
	}

	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// Cancel marks a purchase invoice cancelled and reverses its stock.
// Fails when the received quantities have already been sold.
func (s *PurchaseService) Cancel(ctx context.Context, id uuid.UUID) (*trade.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasCommitted := purchase.Status != trade.StatusDraft
	if err := purchase.Cancel(); err != nil {
		return nil, err
	}
	if wasCommitted {
		if err := s.applyStock(ctx, purchase, decimal.NewFromInt(-1)); err != nil {
			return nil, err
		}
	}

	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// Delete removes a purchase invoice, reversing stock for invoices that
// had committed it.
func (s *PurchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if purchase.Status != trade.StatusDraft && purchase.Status != trade.StatusCancelled {
		if err := s.applyStock(ctx, purchase, decimal.NewFromInt(-1)); err != nil {
			return err
		}
	}
	return s.purchaseRepo.Delete(ctx, id)
}

func (s *PurchaseService) applyStock(ctx context.Context, purchase *trade.Purchase, sign decimal.Decimal) error {
	return s.applyItemStock(ctx, purchase.WarehouseID, purchase.Items, sign)
}

func (s *PurchaseService) applyItemStock(ctx context.Context, warehouseID uuid.UUID, items []trade.PurchaseItem, sign decimal.Decimal) error {
	for _, item := range items {
		delta := item.Quantity.Mul(sign)
		if err := s.stockRepo.AdjustQuantity(ctx, item.ProductID, warehouseID, delta); err != nil {
			return err
		}
	}
	return nil
}
