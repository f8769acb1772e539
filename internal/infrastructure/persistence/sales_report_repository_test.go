package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shopstack/backend/internal/domain/report"
	"github.com/shopstack/backend/internal/domain/trade"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormSalesReportRepository_Summary(t *testing.T) {
	t.Run("default filter excludes cancelled from sums", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesReportRepository(db)

		rows := sqlmock.NewRows([]string{"total_sales", "total_paid", "total_due", "total_discount", "total_invoices"}).
			AddRow("100", "60", "40", "0", 2)

		// cancelled rows contribute zero to sums but still count
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN sales\.status <> 'cancelled' THEN sales\.total_amount ELSE 0 END\), 0\) AS total_sales.*COUNT\(\*\) AS total_invoices FROM "sales"`).
			WillReturnRows(rows)

		summary, err := repo.Summary(context.Background(), report.Filter{})

		require.NoError(t, err)
		assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, int64(2), summary.TotalInvoices)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit status filter sums plainly", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesReportRepository(db)

		status := trade.StatusCancelled
		rows := sqlmock.NewRows([]string{"total_sales", "total_paid", "total_due", "total_discount", "total_invoices"}).
			AddRow("50", "0", "50", "0", 1)

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(sales\.total_amount\), 0\) AS total_sales.*WHERE sales\.status = \$1`).
			WithArgs("cancelled").
			WillReturnRows(rows)

		summary, err := repo.Summary(context.Background(), report.Filter{Status: &status})

		require.NoError(t, err)
		assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(50)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set yields zeros", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesReportRepository(db)

		rows := sqlmock.NewRows([]string{"total_sales", "total_paid", "total_due", "total_discount", "total_invoices"}).
			AddRow("0", "0", "0", "0", 0)

		mock.ExpectQuery(`SELECT .* FROM "sales"`).WillReturnRows(rows)

		summary, err := repo.Summary(context.Background(), report.Filter{})

		require.NoError(t, err)
		assert.True(t, summary.TotalSales.IsZero())
		assert.Zero(t, summary.TotalInvoices)
	})
}

func TestGormSalesReportRepository_Count(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormSalesReportRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sales"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background(), report.Filter{})

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSalesReportRepository_Rows(t *testing.T) {
	t.Run("applies offset and limit", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesReportRepository(db)

		mock.ExpectQuery(`SELECT sales\.id, sales\.invoice_number.*ORDER BY sales\.invoice_date DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 20).
			WillReturnRows(sqlmock.NewRows([]string{"id", "invoice_number"}))

		_, err := repo.Rows(context.Background(), report.Filter{},
			report.SalesSortFields.Resolve("", ""),
			report.PageRequest{Page: 3, PerPage: 10})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all sentinel skips slicing", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormSalesReportRepository(db)

		mock.ExpectQuery(`SELECT sales\.id, sales\.invoice_number.*ORDER BY sales\.invoice_date DESC$`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "invoice_number"}))

		_, err := repo.Rows(context.Background(), report.Filter{},
			report.SalesSortFields.Resolve("", ""),
			report.PageRequest{Page: 1, PerPage: 10, All: true})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
