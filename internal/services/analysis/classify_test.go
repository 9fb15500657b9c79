package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewSilentLogger(), common.SystemClock{})
}

func TestClassifyFundamentals(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name         string
		fundamentals *models.Fundamentals
		want         models.FundamentalsRating
	}{
		{
			name:         "nil fundamentals is unknown",
			fundamentals: nil,
			want:         models.FundamentalsUnknown,
		},
		{
			name: "all strong signals",
			fundamentals: &models.Fundamentals{
				EPSGrowthPct: 20, NetMarginPct: 25, FCFYieldPct: 4, ROEPct: 30,
			},
			want: models.FundamentalsStrong,
		},
		{
			name: "one strong signal short of the bar is ok",
			fundamentals: &models.Fundamentals{
				EPSGrowthPct: 20, NetMarginPct: 25, FCFYieldPct: 2, ROEPct: 30,
			},
			want: models.FundamentalsOK,
		},
		{
			name: "low growth and thin margins is weak",
			fundamentals: &models.Fundamentals{
				EPSGrowthPct: 2, NetMarginPct: 5,
			},
			want: models.FundamentalsWeak,
		},
		{
			name: "low growth alone is still ok",
			fundamentals: &models.Fundamentals{
				EPSGrowthPct: 2, NetMarginPct: 15,
			},
			want: models.FundamentalsOK,
		},
		{
			name:         "zero-value fundamentals classify as weak, not unknown",
			fundamentals: &models.Fundamentals{},
			want:         models.FundamentalsWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stock := &models.StockData{Ticker: "TEST", Fundamentals: tt.fundamentals}
			assert.Equal(t, tt.want, svc.ClassifyFundamentals(stock))
		})
	}
}

func TestClassifyValuation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name         string
		fundamentals *models.Fundamentals
		want         models.ValuationRating
	}{
		{
			name:         "nil fundamentals is unknown",
			fundamentals: nil,
			want:         models.ValuationUnknown,
		},
		{
			name:         "missing forward PE is unknown",
			fundamentals: &models.Fundamentals{ForwardPE: 0, EPSGrowthPct: 20},
			want:         models.ValuationUnknown,
		},
		{
			name:         "low PEG and low PE is cheap",
			fundamentals: &models.Fundamentals{ForwardPE: 15, EPSGrowthPct: 20},
			want:         models.ValuationCheap,
		},
		{
			name:         "low PEG but high PE is not cheap",
			fundamentals: &models.Fundamentals{ForwardPE: 25, EPSGrowthPct: 30},
			want:         models.ValuationFair,
		},
		{
			name:         "high PEG is rich",
			fundamentals: &models.Fundamentals{ForwardPE: 30, EPSGrowthPct: 10},
			want:         models.ValuationRich,
		},
		{
			name:         "extreme forward PE is rich regardless of growth",
			fundamentals: &models.Fundamentals{ForwardPE: 45, EPSGrowthPct: 50},
			want:         models.ValuationRich,
		},
		{
			name:         "negative growth is floored, not sign-flipped",
			fundamentals: &models.Fundamentals{ForwardPE: 18, EPSGrowthPct: -10},
			want:         models.ValuationRich,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stock := &models.StockData{Ticker: "TEST", Fundamentals: tt.fundamentals}
			got, _ := svc.ClassifyValuation(stock)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyValuation_PEGValue(t *testing.T) {
	svc := newTestService()

	stock := &models.StockData{
		Ticker:       "TEST",
		Fundamentals: &models.Fundamentals{ForwardPE: 20, EPSGrowthPct: 10},
	}
	_, peg := svc.ClassifyValuation(stock)
	assert.InDelta(t, 2.0, peg, 0.001)
}
