package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/backend/internal/domain/shared"
	"github.com/shopstack/backend/internal/domain/trade"
)

func TestResolveFilter_Dates(t *testing.T) {
	f, err := ResolveFilter(RawFilter{DateFrom: "2024-03-01", DateTo: "2024-03-31"})
	require.NoError(t, err)
	require.NotNil(t, f.DateFrom)
	require.NotNil(t, f.DateTo)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), *f.DateFrom)
	// DateTo is inclusive: normalized to the very end of its day.
	assert.Equal(t, 2024, f.DateTo.Year())
	assert.Equal(t, time.March, f.DateTo.Month())
	assert.Equal(t, 31, f.DateTo.Day())
	assert.Equal(t, 23, f.DateTo.Hour())
}

func TestResolveFilter_InvertedRange(t *testing.T) {
	_, err := ResolveFilter(RawFilter{DateFrom: "2024-03-31", DateTo: "2024-03-01"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	assert.Contains(t, domainErr.Message, "date_to")
}

func TestResolveFilter_BadValues(t *testing.T) {
	tests := []struct {
		name string
		raw  RawFilter
	}{
		{"malformed date", RawFilter{DateFrom: "01/03/2024"}},
		{"unknown status", RawFilter{Status: "refunded"}},
		{"unknown group_by", RawFilter{GroupBy: "yearly"}},
		{"bad customer id", RawFilter{CustomerID: "not-a-uuid"}},
		{"bad party type", RawFilter{PartyType: "vendor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveFilter(tt.raw)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		})
	}
}

func TestResolveFilter_CancelledExclusionPolicy(t *testing.T) {
	implicit, err := ResolveFilter(RawFilter{})
	require.NoError(t, err)
	assert.True(t, implicit.ExcludesCancelled())

	explicit, err := ResolveFilter(RawFilter{Status: "cancelled"})
	require.NoError(t, err)
	assert.False(t, explicit.ExcludesCancelled())
	require.NotNil(t, explicit.Status)
	assert.Equal(t, trade.StatusCancelled, *explicit.Status)
}

func TestResolveFilter_PartyIDBindsToPartyType(t *testing.T) {
	id := uuid.New()

	asCustomer, err := ResolveFilter(RawFilter{PartyID: id.String()})
	require.NoError(t, err)
	require.NotNil(t, asCustomer.CustomerID)
	assert.Equal(t, id, *asCustomer.CustomerID)
	assert.Nil(t, asCustomer.SupplierID)

	asSupplier, err := ResolveFilter(RawFilter{PartyID: id.String(), PartyType: "supplier"})
	require.NoError(t, err)
	require.NotNil(t, asSupplier.SupplierID)
	assert.Equal(t, id, *asSupplier.SupplierID)
	assert.Nil(t, asSupplier.CustomerID)
}

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		perPage string
		want    PageRequest
	}{
		{"defaults", "", "", PageRequest{Page: 1, PerPage: 10}},
		{"explicit", "3", "25", PageRequest{Page: 3, PerPage: 25}},
		{"all sentinel", "1", "all", PageRequest{Page: 1, PerPage: 10, All: true}},
		{"garbage degrades", "x", "-5", PageRequest{Page: 1, PerPage: 10}},
		{"capped", "1", "9999", PageRequest{Page: 1, PerPage: MaxPerPage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePageRequest(tt.page, tt.perPage))
		})
	}
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, LastPage(0, 10))
	assert.Equal(t, 1, LastPage(10, 10))
	assert.Equal(t, 2, LastPage(11, 10))
	assert.Equal(t, 50, LastPage(500, 10))
	assert.Equal(t, 1, LastPage(42, 0))
}

func TestLastPage_Bounds(t *testing.T) {
	// last_page*per_page >= total >= (last_page-1)*per_page + 1 for total > 0.
	for _, total := range []int64{1, 9, 10, 11, 99, 100, 101} {
		for _, per := range []int{1, 7, 10, 50} {
			last := int64(LastPage(total, per))
			assert.GreaterOrEqual(t, last*int64(per), total)
			assert.GreaterOrEqual(t, total, (last-1)*int64(per)+1)
		}
	}
}
