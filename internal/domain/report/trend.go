package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DatedAmount is one transaction amount with its business date, the raw
// input of trend bucketing.
type DatedAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// TrendPoint is one chart bucket. Every series has a fixed length;
// empty buckets carry zero rather than being omitted.
type TrendPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

const trendDayLabel = "Jan 02"

// DailyTrend buckets amounts into the 7 days ending at now, oldest
// first. Rows outside the window are ignored.
func DailyTrend(rows []DatedAmount, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := startOfDay(now).AddDate(0, 0, i-6)
		points[i] = TrendPoint{Label: day.Format(trendDayLabel), Amount: decimal.Zero}
		index[day.Format(dateLayout)] = i
	}
	for _, row := range rows {
		if i, ok := index[startOfDay(row.Date).Format(dateLayout)]; ok {
			points[i].Amount = points[i].Amount.Add(row.Amount)
		}
	}
	return points
}

// WeeklyTrend buckets amounts into the current Monday-start week and
// the 3 before it, oldest first.
func WeeklyTrend(rows []DatedAmount, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 4)
	starts := make([]time.Time, 4)
	for i := 0; i < 4; i++ {
		start := startOfWeek(now).AddDate(0, 0, (i-3)*7)
		starts[i] = start
		end := start.AddDate(0, 0, 6)
		points[i] = TrendPoint{
			Label:  start.Format(trendDayLabel) + " - " + end.Format(trendDayLabel),
			Amount: decimal.Zero,
		}
	}
	for _, row := range rows {
		week := startOfWeek(row.Date)
		for i := range starts {
			if week.Equal(starts[i]) {
				points[i].Amount = points[i].Amount.Add(row.Amount)
				break
			}
		}
	}
	return points
}

// PeriodKey truncates a date to its daily, ISO-week or monthly bucket
// key. Non-period groupings and zero dates yield "".
func PeriodKey(t time.Time, by GroupBy) string {
	if t.IsZero() {
		return ""
	}
	switch by {
	case GroupByDaily:
		return t.Format(dateLayout)
	case GroupByWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GroupByMonthly:
		return t.Format("2006-01")
	}
	return ""
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}
