package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/backend/internal/domain/report"
)

func TestGormDueReportRepository_Summary(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormDueReportRepository(db)

	now := time.Now()

	rows := sqlmock.NewRows([]string{"total_due", "overdue_amount", "total_parties", "total_invoices"}).
		AddRow("100", "30", 1, 2)

	// parties are counted distinct; two invoices for one customer is one party
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(sales\.balance_amount\), 0\) AS total_due.*COUNT\(DISTINCT sales\.customer_id\) AS total_parties.*FROM "sales" JOIN customers`).
		WillReturnRows(rows)

	summary, err := repo.Summary(context.Background(), report.Filter{PartyType: report.PartyCustomer}, now)

	require.NoError(t, err)
	assert.True(t, summary.TotalDue.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.OverdueAmount.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, int64(1), summary.TotalParties)
	assert.Equal(t, int64(2), summary.TotalInvoices)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDueReportRepository_SupplierSide(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormDueReportRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT purchases\.supplier_id\) FROM "purchases" JOIN suppliers`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), report.Filter{PartyType: report.PartySupplier})

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDueReportRepository_Rows(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormDueReportRepository(db)

	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	partyID := uuid.New()
	pastDue := now.AddDate(0, 0, -5)

	rows := sqlmock.NewRows([]string{"party_id", "party_name", "phone", "invoice_count", "due_amount", "oldest_due_date"}).
		AddRow(partyID, "Acme", "123", 2, "100", pastDue)

	mock.ExpectQuery(`SELECT sales\.customer_id AS party_id.*GROUP BY sales\.customer_id, customers\.name, customers\.phone ORDER BY due_amount DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(rows)

	result, err := repo.Rows(context.Background(), report.Filter{PartyType: report.PartyCustomer},
		report.DueSortFields.Resolve("", ""),
		report.PageRequest{Page: 1, PerPage: 10}, now)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, partyID, result[0].PartyID)
	assert.True(t, result[0].DueAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, result[0].IsOverdue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
