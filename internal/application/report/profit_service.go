package report

import (
	"context"

	"github.com/shopstack/backend/internal/domain/report"
)

// ProfitReportResult bundles the grouped rows and their rollup.
type ProfitReportResult struct {
	Rows    []report.ProfitRow
	Summary report.ProfitSummary
	GroupBy report.GroupBy
}

// ProfitService computes the profit report. All grouping dimensions
// share one fold over the filtered sale lines; the grouping key is the
// only variable.
type ProfitService struct {
	repo report.ProfitReportRepository
}

// NewProfitService creates a ProfitService
func NewProfitService(repo report.ProfitReportRepository) *ProfitService {
	return &ProfitService{repo: repo}
}

// ProfitReport resolves the filter, fetches the matching sale lines and
// folds them along the requested dimension. group_by defaults to daily.
func (s *ProfitService) ProfitReport(ctx context.Context, raw report.RawFilter) (*ProfitReportResult, error) {
	filter, err := report.ResolveFilter(raw)
	if err != nil {
		return nil, err
	}
	groupBy := filter.GroupBy
	if groupBy == "" {
		groupBy = report.GroupByDaily
	}

	items, err := s.repo.Items(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := report.GroupProfit(items, groupBy)
	return &ProfitReportResult{
		Rows:    rows,
		Summary: report.SummarizeProfit(rows),
		GroupBy: groupBy,
	}, nil
}
