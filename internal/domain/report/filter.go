package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/backend/internal/domain/shared"
	"github.com/shopstack/backend/internal/domain/trade"
)

// GroupBy selects the grouping dimension of the profit report.
type GroupBy string

const (
	GroupByDaily    GroupBy = "daily"
	GroupByWeekly   GroupBy = "weekly"
	GroupByMonthly  GroupBy = "monthly"
	GroupByProduct  GroupBy = "product"
	GroupByCategory GroupBy = "category"
)

func (g GroupBy) IsValid() bool {
	switch g {
	case GroupByDaily, GroupByWeekly, GroupByMonthly, GroupByProduct, GroupByCategory:
		return true
	}
	return false
}

// IsPeriod reports whether the grouping is a time bucket.
func (g GroupBy) IsPeriod() bool {
	return g == GroupByDaily || g == GroupByWeekly || g == GroupByMonthly
}

// PartyType selects the side of a due report.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
)

// RawFilter carries the unparsed request parameters of a report.
type RawFilter struct {
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	Status       string `form:"status"`
	CustomerID   string `form:"customer_id"`
	SupplierID   string `form:"supplier_id"`
	PartyID      string `form:"party_id"`
	CategoryID   string `form:"category_id"`
	WarehouseID  string `form:"warehouse_id"`
	PartyType    string `form:"party_type"`
	GroupBy      string `form:"group_by"`
	Search       string `form:"search"`
	OverdueOnly  bool   `form:"overdue_only"`
	LowStockOnly bool   `form:"low_stock_only"`
	SortBy       string `form:"sort_by"`
	SortDir      string `form:"sort_direction"`
	Page         string `form:"page"`
	PerPage      string `form:"per_page"`
}

// Filter is the resolved, immutable predicate set shared by the summary
// and detail paths of a report. Nil fields are unbounded.
type Filter struct {
	DateFrom     *time.Time
	DateTo       *time.Time
	Status       *trade.InvoiceStatus
	CustomerID   *uuid.UUID
	SupplierID   *uuid.UUID
	CategoryID   *uuid.UUID
	WarehouseID  *uuid.UUID
	PartyType    PartyType
	GroupBy      GroupBy
	Search       string
	OverdueOnly  bool
	LowStockOnly bool
}

// ExcludesCancelled reports whether monetary sums should skip cancelled
// invoices. Cancelled rows count only when the caller filtered for a
// status explicitly.
func (f Filter) ExcludesCancelled() bool {
	return f.Status == nil
}

const dateLayout = "2006-01-02"

// ResolveFilter parses and validates raw report parameters. DateFrom is
// normalized to the start of its day and DateTo to the end, so both
// bounds are inclusive for timestamp columns.
func ResolveFilter(raw RawFilter) (Filter, error) {
	var f Filter

	if raw.DateFrom != "" {
		d, err := time.ParseInLocation(dateLayout, raw.DateFrom, time.Local)
		if err != nil {
			return Filter{}, shared.NewValidationError("date_from", "must be a date in YYYY-MM-DD format")
		}
		f.DateFrom = &d
	}
	if raw.DateTo != "" {
		d, err := time.ParseInLocation(dateLayout, raw.DateTo, time.Local)
		if err != nil {
			return Filter{}, shared.NewValidationError("date_to", "must be a date in YYYY-MM-DD format")
		}
		if f.DateFrom != nil && d.Before(*f.DateFrom) {
			return Filter{}, shared.NewValidationError("date_to", "must not be before date_from")
		}
		end := d.Add(24*time.Hour - time.Nanosecond)
		f.DateTo = &end
	}

	if raw.Status != "" {
		status := trade.InvoiceStatus(strings.ToLower(raw.Status))
		if !status.IsValid() {
			return Filter{}, shared.NewValidationError("status", "is not a valid invoice status")
		}
		f.Status = &status
	}

	var err error
	if f.CustomerID, err = parseOptionalID("customer_id", raw.CustomerID); err != nil {
		return Filter{}, err
	}
	if f.SupplierID, err = parseOptionalID("supplier_id", raw.SupplierID); err != nil {
		return Filter{}, err
	}
	if f.CategoryID, err = parseOptionalID("category_id", raw.CategoryID); err != nil {
		return Filter{}, err
	}
	if f.WarehouseID, err = parseOptionalID("warehouse_id", raw.WarehouseID); err != nil {
		return Filter{}, err
	}

	switch PartyType(raw.PartyType) {
	case "":
		f.PartyType = PartyCustomer
	case PartyCustomer:
		f.PartyType = PartyCustomer
	case PartySupplier:
		f.PartyType = PartySupplier
	default:
		return Filter{}, shared.NewValidationError("party_type", "must be customer or supplier")
	}

	// party_id binds to the side selected by party_type.
	if raw.PartyID != "" {
		id, err := parseOptionalID("party_id", raw.PartyID)
		if err != nil {
			return Filter{}, err
		}
		if f.PartyType == PartySupplier {
			f.SupplierID = id
		} else {
			f.CustomerID = id
		}
	}

	if raw.GroupBy != "" {
		g := GroupBy(strings.ToLower(raw.GroupBy))
		if !g.IsValid() {
			return Filter{}, shared.NewValidationError("group_by", "must be one of daily, weekly, monthly, product, category")
		}
		f.GroupBy = g
	}

	f.Search = strings.TrimSpace(raw.Search)
	f.OverdueOnly = raw.OverdueOnly
	f.LowStockOnly = raw.LowStockOnly
	return f, nil
}

func parseOptionalID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, shared.NewValidationError(field, "must be a valid UUID")
	}
	return &id, nil
}

const (
	DefaultPerPage = 10
	MaxPerPage     = 500
)

// PageRequest is the requested pagination window. All bypasses slicing
// and returns the whole filtered set as one page.
type PageRequest struct {
	Page    int
	PerPage int
	All     bool
}

// ParsePageRequest never errors; malformed values degrade to defaults.
// The per_page sentinel "all" requests the full set.
func ParsePageRequest(page, perPage string) PageRequest {
	req := PageRequest{Page: 1, PerPage: DefaultPerPage}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		req.Page = n
	}
	switch {
	case strings.EqualFold(perPage, "all"):
		req.All = true
	default:
		if n, err := strconv.Atoi(perPage); err == nil && n > 0 {
			if n > MaxPerPage {
				n = MaxPerPage
			}
			req.PerPage = n
		}
	}
	return req
}

// Offset returns the row offset of the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// LastPage returns the page count for a total row count, never below 1.
func LastPage(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		return 1
	}
	return last
}
