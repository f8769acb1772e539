package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t time.Time, amount int64) DatedAmount {
	return DatedAmount{Date: t, Amount: decimal.NewFromInt(amount)}
}

func TestDailyTrend_AlwaysSevenPoints(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)

	rows := []DatedAmount{
		d(now, 100),
		d(now.AddDate(0, 0, -2), 40),
		d(now.AddDate(0, 0, -2), 10),
		d(now.AddDate(0, 0, -9), 999), // outside the window
	}

	points := DailyTrend(rows, now)
	require.Len(t, points, 7)

	// Oldest first, ending today.
	assert.Equal(t, "Mar 09", points[0].Label)
	assert.Equal(t, "Mar 15", points[6].Label)

	assert.True(t, points[6].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, points[4].Amount.Equal(decimal.NewFromInt(50)))
	for _, i := range []int{0, 1, 2, 3, 5} {
		assert.True(t, points[i].Amount.IsZero(), "bucket %d should be zero", i)
	}
}

func TestDailyTrend_EmptyInput(t *testing.T) {
	points := DailyTrend(nil, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))
	require.Len(t, points, 7)
	for _, p := range points {
		assert.True(t, p.Amount.IsZero())
	}
}

func TestWeeklyTrend_FourMondayStartBuckets(t *testing.T) {
	// 2024-03-15 is a Friday; its week starts Monday 2024-03-11.
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	rows := []DatedAmount{
		d(time.Date(2024, 3, 11, 8, 0, 0, 0, time.Local), 70),  // current week
		d(time.Date(2024, 3, 17, 23, 0, 0, 0, time.Local), 30), // Sunday of current week
		d(time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local), 20),  // previous week
		d(time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local), 500), // far outside
	}

	points := WeeklyTrend(rows, now)
	require.Len(t, points, 4)

	assert.Equal(t, "Feb 19 - Feb 25", points[0].Label)
	assert.Equal(t, "Mar 11 - Mar 17", points[3].Label)

	assert.True(t, points[3].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, points[2].Amount.Equal(decimal.NewFromInt(20)))
	assert.True(t, points[0].Amount.IsZero())
	assert.True(t, points[1].Amount.IsZero())
}

func TestPeriodKey(t *testing.T) {
	// 2024-01-01 falls in ISO week 1 of 2024.
	ts := time.Date(2024, 1, 1, 15, 0, 0, 0, time.Local)

	tests := []struct {
		by   GroupBy
		want string
	}{
		{GroupByDaily, "2024-01-01"},
		{GroupByWeekly, "2024-W01"},
		{GroupByMonthly, "2024-01"},
		{GroupByProduct, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodKey(ts, tt.by))
	}

	assert.Empty(t, PeriodKey(time.Time{}, GroupByDaily))
}

func TestPeriodKey_ISOWeekYearBoundary(t *testing.T) {
	// 2023-12-31 is a Sunday belonging to ISO week 52 of 2023.
	assert.Equal(t, "2023-W52", PeriodKey(time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local), GroupByWeekly))
	// 2025-12-29 is a Monday belonging to ISO week 1 of 2026.
	assert.Equal(t, "2026-W01", PeriodKey(time.Date(2025, 12, 29, 0, 0, 0, 0, time.Local), GroupByWeekly))
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i).Add(13 * time.Hour)
		assert.Equal(t, monday, startOfWeek(day))
	}
}
