package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     string
	}{
		{"growth", 150, 100, "50"},
		{"decline", 50, 100, "-50"},
		{"flat", 100, 100, "0"},
		{"zero baseline yields zero not infinity", 100, 0, "0"},
		{"both zero", 0, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowthRate(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}
