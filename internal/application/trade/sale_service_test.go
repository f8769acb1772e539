package trade

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/backend/internal/domain/inventory"
	"github.com/shopstack/backend/internal/domain/shared"
	"github.com/shopstack/backend/internal/domain/trade"
)

type fakeSaleRepo struct {
	byID     map[uuid.UUID]*trade.Sale
	byNumber map[string]*trade.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		byID:     make(map[uuid.UUID]*trade.Sale),
		byNumber: make(map[string]*trade.Sale),
	}
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *trade.Sale) error {
	cp := *sale
	f.byID[sale.ID] = &cp
	f.byNumber[sale.InvoiceNumber] = &cp
	return nil
}

func (f *fakeSaleRepo) Update(_ context.Context, sale *trade.Sale) error {
	cp := *sale
	f.byID[sale.ID] = &cp
	f.byNumber[sale.InvoiceNumber] = &cp
	return nil
}

func (f *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	sale, ok := f.byID[id]
	if !ok {
		return shared.ErrNotFound
	}
	delete(f.byNumber, sale.InvoiceNumber)
	delete(f.byID, id)
	return nil
}

func (f *fakeSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.Sale, error) {
	sale, ok := f.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *sale
	return &cp, nil
}

func (f *fakeSaleRepo) FindByInvoiceNumber(_ context.Context, number string) (*trade.Sale, error) {
	sale, ok := f.byNumber[number]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *sale
	return &cp, nil
}

func (f *fakeSaleRepo) List(context.Context, trade.ListQuery) ([]trade.Sale, int64, error) {
	return nil, 0, nil
}

func (f *fakeSaleRepo) NextInvoiceNumber(context.Context) (string, error) {
	return "INV-000042", nil
}

type stockKey struct {
	product   uuid.UUID
	warehouse uuid.UUID
}

type fakeStockRepo struct {
	quantities map[stockKey]decimal.Decimal
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: make(map[stockKey]decimal.Decimal)}
}

func (f *fakeStockRepo) set(productID, warehouseID uuid.UUID, qty int64) {
	f.quantities[stockKey{productID, warehouseID}] = decimal.NewFromInt(qty)
}

func (f *fakeStockRepo) Upsert(_ context.Context, stock *inventory.Stock) error {
	f.quantities[stockKey{stock.ProductID, stock.WarehouseID}] = stock.Quantity
	return nil
}

func (f *fakeStockRepo) FindByProductAndWarehouse(_ context.Context, productID, warehouseID uuid.UUID) (*inventory.Stock, error) {
	qty, ok := f.quantities[stockKey{productID, warehouseID}]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &inventory.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: qty}, nil
}

func (f *fakeStockRepo) AdjustQuantity(_ context.Context, productID, warehouseID uuid.UUID, delta decimal.Decimal) error {
	key := stockKey{productID, warehouseID}
	stock := inventory.Stock{Quantity: f.quantities[key]}
	if err := stock.Adjust(delta); err != nil {
		return err
	}
	f.quantities[key] = stock.Quantity
	return nil
}

func saleFixture(productID, warehouseID uuid.UUID) *trade.Sale {
	return &trade.Sale{
		WarehouseID: warehouseID,
		InvoiceDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PaidAmount:  decimal.NewFromInt(50),
		Items: []trade.SaleItem{
			{
				ProductID: productID,
				Quantity:  decimal.NewFromInt(2),
				UnitPrice: decimal.NewFromInt(60),
				Discount:  decimal.NewFromInt(10),
				Tax:       decimal.NewFromInt(5),
			},
		},
	}
}

func TestSaleCreate_DerivesTotalsAndMovesStock(t *testing.T) {
	productID := uuid.New()
	warehouseID := uuid.New()
	stocks := newFakeStockRepo()
	stocks.set(productID, warehouseID, 10)

	svc := NewSaleService(newFakeSaleRepo(), stocks)

	sale, err := svc.Create(context.Background(), saleFixture(productID, warehouseID))
	require.NoError(t, err)

	assert.Equal(t, "INV-000042", sale.InvoiceNumber)
	// 2*60 - 10 + 5 = 115
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(115)))
	assert.True(t, sale.BalanceAmount.Equal(decimal.NewFromInt(65)))
	assert.Equal(t, trade.StatusPartial, sale.Status)

	qty := stocks.quantities[stockKey{productID, warehouseID}]
	assert.True(t, qty.Equal(decimal.NewFromInt(8)), "stock after sale %s", qty)
}

func TestSaleCreate_InsufficientStock(t *testing.T) {
	productID := uuid.New()
	warehouseID := uuid.New()
	stocks := newFakeStockRepo()
	stocks.set(productID, warehouseID, 1)

	repo := newFakeSaleRepo()
	svc := NewSaleService(repo, stocks)

	_, err := svc.Create(context.Background(), saleFixture(productID, warehouseID))
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	assert.Empty(t, repo.byID, "invoice must not be written when stock fails")
}

func TestSaleCreate_DraftSkipsStock(t *testing.T) {
	productID := uuid.New()
	warehouseID := uuid.New()
	stocks := newFakeStockRepo()

	svc := NewSaleService(newFakeSaleRepo(), stocks)

	fixture := saleFixture(productID, warehouseID)
	fixture.Status = trade.StatusDraft
	fixture.PaidAmount = decimal.Zero

	sale, err := svc.Create(context.Background(), fixture)
	require.NoError(t, err)

	assert.Equal(t, trade.StatusDraft, sale.Status)
	assert.Empty(t, stocks.quantities)
}

func TestSaleCreate_DuplicateInvoiceNumber(t *testing.T) {
	productID := uuid.New()
	warehouseID := uuid.New()
	stocks := newFakeStockRepo()
	stocks.set(productID, warehouseID, 100)

	svc := NewSaleService(newFakeSaleRepo(), stocks)

	first := saleFixture(productID, warehouseID)
	first.InvoiceNumber = "INV-000001"
	_, err := svc.Create(context.Background(), first)
	require.NoError(t, err)

	second := saleFixture(productID, warehouseID)
	second.InvoiceNumber = "INV-000001"
	_, err = svc.Create(context.Background(), second)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestSaleCancel_ReturnsStock(t *testing.T) {
	productID := uuid.New()
	warehouseID := uuid.New()
	stocks := newFakeStockRepo()
	stocks.set(productID, warehouseID, 10)

	svc := NewSaleService(newFakeSaleRepo(), stocks)

	sale, err := svc.Create(context.Background(), saleFixture(productID, warehouseID))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), sale.ID)
	require.NoError(t, err)

	assert.Equal(t, trade.StatusCancelled, cancelled.Status)
	qty := stocks.quantities[stockKey{productID, warehouseID}]
	assert.True(t, qty.Equal(decimal.NewFromInt(10)), "stock after cancel %s", qty)

	// A second cancel is rejected.
	_, err = svc.Cancel(context.Background(), sale.ID)
	require.Error(t, err)
}

func TestSaleUpdate_ReconcilesStock(t *testing.T) {
	productID := uuid.New()
	warehouseID := uuid.New()
	stocks := newFakeStockRepo()
	stocks.set(productID, warehouseID, 10)

	svc := NewSaleService(newFakeSaleRepo(), stocks)

	sale, err := svc.Create(context.Background(), saleFixture(productID, warehouseID))
	require.NoError(t, err)

	update := saleFixture(productID, warehouseID)
	update.Items[0].Quantity = decimal.NewFromInt(5)
	updated, err := svc.Update(context.Background(), sale.ID, update)
	require.NoError(t, err)

	// 5*60 - 10 + 5 = 295
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(295)))
	qty := stocks.quantities[stockKey{productID, warehouseID}]
	assert.True(t, qty.Equal(decimal.NewFromInt(5)), "stock after update %s", qty)
}
