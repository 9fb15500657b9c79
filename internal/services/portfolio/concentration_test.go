package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/compass/internal/models"
)

func TestDetectConcentrationRisk(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name         string
		allocations  []models.Allocation
		wantLevel    models.ConcentrationLevel
		wantWarnings int
	}{
		{
			name: "evenly spread portfolio is low",
			allocations: []models.Allocation{
				{Ticker: "A", WeightPct: 20}, {Ticker: "B", WeightPct: 20},
				{Ticker: "C", WeightPct: 20}, {Ticker: "D", WeightPct: 20},
				{Ticker: "E", WeightPct: 20},
			},
			wantLevel:    models.ConcentrationLow,
			wantWarnings: 0,
		},
		{
			name: "dominant position is high",
			allocations: []models.Allocation{
				{Ticker: "A", WeightPct: 18}, {Ticker: "B", WeightPct: 82},
			},
			wantLevel:    models.ConcentrationHigh,
			wantWarnings: 1,
		},
		{
			name: "high level wins over watch-level positions",
			allocations: []models.Allocation{
				{Ticker: "A", WeightPct: 22}, {Ticker: "B", WeightPct: 8},
				{Ticker: "C", WeightPct: 70},
			},
			wantLevel:    models.ConcentrationHigh,
			wantWarnings: 2,
		},
		{
			name: "moderate only when nothing crosses the high bar",
			allocations: []models.Allocation{
				{Ticker: "A", WeightPct: 20}, {Ticker: "B", WeightPct: 20},
				{Ticker: "C", WeightPct: 20}, {Ticker: "D", WeightPct: 24},
				{Ticker: "E", WeightPct: 16},
			},
			wantLevel:    models.ConcentrationModerate,
			wantWarnings: 1,
		},
		{
			name:         "empty allocations are low",
			allocations:  nil,
			wantLevel:    models.ConcentrationLow,
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := svc.DetectConcentrationRisk(tt.allocations)
			assert.Equal(t, tt.wantLevel, report.Level)
			assert.Len(t, report.Warnings, tt.wantWarnings)
		})
	}
}

func TestDetectConcentrationRisk_EqualWeightsAtWatchBoundary(t *testing.T) {
	svc := newTestService()

	allocations := make([]models.Allocation, 0, 5)
	for _, ticker := range []string{"A", "B", "C", "D", "E"} {
		allocations = append(allocations, models.Allocation{Ticker: ticker, WeightPct: 20})
	}

	report := svc.DetectConcentrationRisk(allocations)

	assert.Equal(t, models.ConcentrationLow, report.Level)
	assert.Empty(t, report.Warnings, "a position exactly at the watch level is not flagged")
}

func TestDetectConcentrationRisk_WarningsNameTickers(t *testing.T) {
	svc := newTestService()

	report := svc.DetectConcentrationRisk([]models.Allocation{
		{Ticker: "NVDA", WeightPct: 45}, {Ticker: "AAPL", WeightPct: 55},
	})

	assert.Equal(t, models.ConcentrationHigh, report.Level)
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "NVDA")
	assert.Contains(t, report.Warnings[1], "AAPL")
}

func TestDetectConcentrationRisk_LargestPositions(t *testing.T) {
	svc := newTestService()

	report := svc.DetectConcentrationRisk([]models.Allocation{
		{Ticker: "A", WeightPct: 10}, {Ticker: "B", WeightPct: 40},
		{Ticker: "C", WeightPct: 30}, {Ticker: "D", WeightPct: 20},
	})

	require.Len(t, report.LargestPositions, 3)
	assert.Equal(t, "B", report.LargestPositions[0].Ticker)
	assert.Equal(t, "C", report.LargestPositions[1].Ticker)
	assert.Equal(t, "D", report.LargestPositions[2].Ticker)
}

func TestSuggestAction(t *testing.T) {
	svc := newTestService()
	portfolio := fixturePortfolio()

	t.Run("absent ticker suggests buy", func(t *testing.T) {
		action, reasoning := svc.SuggestAction("GOOG", portfolio, 0)
		assert.Equal(t, models.ActionBuy, action)
		require.NotEmpty(t, reasoning)
		assert.Contains(t, reasoning[0], "not currently held")
	})

	t.Run("oversized position suggests trim", func(t *testing.T) {
		action, reasoning := svc.SuggestAction("AAPL", portfolio, 45)
		assert.Equal(t, models.ActionTrim, action)
		require.NotEmpty(t, reasoning)
		assert.Contains(t, reasoning[0], "45.0%")
	})

	t.Run("position within limits suggests hold", func(t *testing.T) {
		action, _ := svc.SuggestAction("MSFT", portfolio, 12)
		assert.Equal(t, models.ActionHold, action)
	})

	t.Run("nil portfolio suggests buy", func(t *testing.T) {
		action, _ := svc.SuggestAction("AAPL", nil, 0)
		assert.Equal(t, models.ActionBuy, action)
	})
}
