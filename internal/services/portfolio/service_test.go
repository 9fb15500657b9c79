package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewSilentLogger(), common.NewDefaultConfig().Policy.Concentration)
}

func fixturePortfolio() *models.Portfolio {
	return &models.Portfolio{
		ID:   "test",
		Name: "Test Portfolio",
		Holdings: []models.Holding{
			{Ticker: "AAPL", Shares: 10, AvgCost: 150},
			{Ticker: "MSFT", Shares: 5, AvgCost: 300},
		},
	}
}

func TestCalculateAllocation(t *testing.T) {
	svc := newTestService()
	prices := map[string]float64{"AAPL": 180, "MSFT": 350}

	allocations := svc.CalculateAllocation(fixturePortfolio(), prices)
	require.Len(t, allocations, 2)

	aapl, msft := allocations[0], allocations[1]

	assert.Equal(t, 1800.0, aapl.Value)
	assert.Equal(t, 300.0, aapl.GainLoss)
	assert.InDelta(t, 20.0, aapl.GainLossPct, 0.001)

	assert.Equal(t, 1750.0, msft.Value)
	assert.InDelta(t, 16.667, msft.GainLossPct, 0.001)

	assert.InDelta(t, 100.0, aapl.WeightPct+msft.WeightPct, 0.001, "weights sum to 100")
}

func TestCalculateAllocation_Empty(t *testing.T) {
	svc := newTestService()

	assert.Empty(t, svc.CalculateAllocation(nil, nil))
	assert.Empty(t, svc.CalculateAllocation(&models.Portfolio{}, nil))
}

func TestCalculateAllocation_MissingPrice(t *testing.T) {
	svc := newTestService()
	prices := map[string]float64{"AAPL": 180}

	allocations := svc.CalculateAllocation(fixturePortfolio(), prices)
	require.Len(t, allocations, 2, "unpriced holdings are enumerated, not dropped")

	assert.False(t, allocations[0].PriceMissing)
	assert.True(t, allocations[1].PriceMissing)
	assert.Equal(t, 0.0, allocations[1].Value)
	assert.InDelta(t, 100.0, allocations[0].WeightPct, 0.001, "weights computed over priced holdings")
}

func TestCalculateMetrics(t *testing.T) {
	svc := newTestService()
	prices := map[string]float64{"AAPL": 180, "MSFT": 350}
	betas := map[string]float64{"AAPL": 1.2, "MSFT": 0.9}

	metrics := svc.CalculateMetrics(fixturePortfolio(), prices, betas)

	assert.Equal(t, 3550.0, metrics.TotalValue)
	assert.Equal(t, 3000.0, metrics.TotalCost)
	assert.Equal(t, 550.0, metrics.TotalGainLoss)
	assert.InDelta(t, 18.333, metrics.TotalGainLossPct, 0.001)

	// (1800*1.2 + 1750*0.9) / 3550
	assert.InDelta(t, 1.0521, metrics.Beta, 0.001)
	assert.Equal(t, models.VolatilityModerate, metrics.Volatility)
}

func TestCalculateMetrics_Empty(t *testing.T) {
	svc := newTestService()

	metrics := svc.CalculateMetrics(&models.Portfolio{}, nil, nil)

	assert.Zero(t, metrics.TotalValue)
	assert.Zero(t, metrics.TotalGainLossPct, "empty portfolio yields zeros, never NaN")
	assert.Zero(t, metrics.Beta)
}

func TestCalculateBeta_MissingBetaDefaultsToNeutral(t *testing.T) {
	svc := newTestService()
	holdings := fixturePortfolio().Holdings
	prices := map[string]float64{"AAPL": 180, "MSFT": 350}

	beta := svc.CalculateBeta(holdings, map[string]float64{"AAPL": 1.4}, prices)

	// (1800*1.4 + 1750*1.0) / 3550
	assert.InDelta(t, 1.2028, beta, 0.001)
}

func TestClassifyVolatility(t *testing.T) {
	assert.Equal(t, models.VolatilityHigh, classifyVolatility(1.3))
	assert.Equal(t, models.VolatilityModerate, classifyVolatility(1.0))
	assert.Equal(t, models.VolatilityLow, classifyVolatility(0.7))
}

func TestBuildContext(t *testing.T) {
	svc := newTestService()
	prices := map[string]float64{"AAPL": 180, "MSFT": 350}

	ctx := svc.BuildContext("AAPL", fixturePortfolio(), prices, nil)
	require.NotNil(t, ctx)

	assert.Equal(t, "AAPL", ctx.Ticker)
	require.NotNil(t, ctx.Holding)
	assert.InDelta(t, 50.704, ctx.CurrentWeightPct, 0.001)
	assert.Equal(t, models.ActionTrim, ctx.SuggestedAction, "a 50% position is above the trim threshold")
	assert.NotEmpty(t, ctx.Reasoning)
}

func TestBuildContext_NilPortfolio(t *testing.T) {
	svc := newTestService()
	assert.Nil(t, svc.BuildContext("AAPL", nil, nil, nil))
}

func TestLookupPrice_CaseInsensitive(t *testing.T) {
	prices := map[string]float64{"AAPL": 180}

	v, ok := lookupPrice(prices, "aapl")
	assert.True(t, ok)
	assert.Equal(t, 180.0, v)

	_, ok = lookupPrice(prices, "GOOG")
	assert.False(t, ok)

	_, ok = lookupPrice(nil, "AAPL")
	assert.False(t, ok)
}
