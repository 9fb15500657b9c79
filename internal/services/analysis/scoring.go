package analysis

import (
	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/models"
)

// Conviction starts from a neutral base and folds additive deltas from the
// agreement of the four classified views, clamped to 0-100.
const convictionBase = 50

// convictionScore measures 3-month directional confidence from signal agreement
func convictionScore(fundamental models.FundamentalsRating, valuation models.ValuationRating,
	technical models.TechnicalView, sentiment models.SentimentView) int {

	score := convictionBase

	switch fundamental {
	case models.FundamentalsStrong:
		score += 15
	case models.FundamentalsOK:
		score += 5
	case models.FundamentalsWeak:
		score -= 15
	}

	switch valuation {
	case models.ValuationCheap:
		score += 10
	case models.ValuationRich:
		score -= 10
	}

	switch technical.Trend {
	case models.TrendBullish:
		score += 15
	case models.TrendBearish:
		score -= 15
	}

	if technical.Momentum == models.MomentumOverbought {
		score -= 5
	}

	switch sentiment.Lean {
	case models.SentimentUpside:
		score += 10
	case models.SentimentDownside:
		score -= 10
	}

	return common.ClampInt(score, 0, 100)
}

// riskScore grades the stock 1 (defensive) to 10 (speculative) from
// leverage, margins, and price-action markers. Missing fundamentals raise
// the score by one: unknown is riskier than measured.
func riskScore(stock *models.StockData, fundamental models.FundamentalsRating, technical models.TechnicalView) int {
	score := 5

	f := stock.Fundamentals
	if f == nil {
		score++
	} else {
		switch {
		case f.DebtToEquity > 2.5:
			score += 3
		case f.DebtToEquity > 1.5:
			score += 2
		case f.DebtToEquity > 1.0:
			score++
		}

		if f.NetMarginPct < 10 {
			score++
		}
		if f.DividendYieldPct > 3 {
			score--
		}
	}

	switch fundamental {
	case models.FundamentalsStrong:
		score--
	case models.FundamentalsWeak:
		score++
	}

	if technical.Momentum == models.MomentumOverbought && technical.PricePosition == models.PositionNearHigh {
		score++
	}

	return common.ClampInt(score, 1, 10)
}
