package analysis

import (
	"fmt"

	"github.com/bobmcallan/compass/internal/models"
)

// RSI cut-offs and 52-week range percentiles for the technical view
const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0

	nearHighPercentile = 80.0
	nearLowPercentile  = 20.0
)

// AnalyzeTechnicals classifies trend, momentum, and price position. A
// missing technicals section degrades to the neutral/mid-range defaults.
func (s *Service) AnalyzeTechnicals(stock *models.StockData) models.TechnicalView {
	t := stock.Technicals
	if t == nil {
		return models.TechnicalView{
			Trend:         models.TrendNeutral,
			Momentum:      models.MomentumNeutral,
			PricePosition: models.PositionMidRange,
			Commentary:    "Technical data unavailable.",
		}
	}

	view := models.TechnicalView{
		Trend:         classifyTrend(t),
		Momentum:      classifyMomentum(t.RSI14),
		PricePosition: classifyPricePosition(t),
	}
	view.Commentary = technicalCommentary(view, t)
	return view
}

// classifyTrend requires the strict chain price>SMA50>SMA200 for bullish
// (and the inverse for bearish); anything else is neutral.
func classifyTrend(t *models.Technicals) models.TrendDirection {
	if t.SMA50 <= 0 || t.SMA200 <= 0 {
		return models.TrendNeutral
	}
	if t.Price > t.SMA50 && t.SMA50 > t.SMA200 {
		return models.TrendBullish
	}
	if t.Price < t.SMA50 && t.SMA50 < t.SMA200 {
		return models.TrendBearish
	}
	return models.TrendNeutral
}

func classifyMomentum(rsi float64) models.MomentumSignal {
	switch {
	case rsi > rsiOverbought:
		return models.MomentumOverbought
	case rsi > 0 && rsi < rsiOversold:
		return models.MomentumOversold
	default:
		return models.MomentumNeutral
	}
}

// classifyPricePosition places the price as a percentile of the 52-week range
func classifyPricePosition(t *models.Technicals) models.PricePosition {
	pct := rangePercentile(t.Price, t.Low52Week, t.High52Week)
	switch {
	case pct > nearHighPercentile:
		return models.PositionNearHigh
	case pct < nearLowPercentile:
		return models.PositionNearLow
	default:
		return models.PositionMidRange
	}
}

// rangePercentile returns price's position in [low, high] as 0-100.
// A degenerate range yields 50 (mid-range).
func rangePercentile(price, low, high float64) float64 {
	if high <= low {
		return 50
	}
	pct := (price - low) / (high - low) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func technicalCommentary(view models.TechnicalView, t *models.Technicals) string {
	var trend string
	switch view.Trend {
	case models.TrendBullish:
		trend = "Uptrend with price above the 50- and 200-day averages"
	case models.TrendBearish:
		trend = "Downtrend with price below the 50- and 200-day averages"
	default:
		trend = "No established trend from the moving averages"
	}

	var momentum string
	switch view.Momentum {
	case models.MomentumOverbought:
		momentum = fmt.Sprintf("RSI overbought at %.0f", t.RSI14)
	case models.MomentumOversold:
		momentum = fmt.Sprintf("RSI oversold at %.0f", t.RSI14)
	default:
		momentum = fmt.Sprintf("RSI neutral at %.0f", t.RSI14)
	}

	var position string
	switch view.PricePosition {
	case models.PositionNearHigh:
		position = "trading near the 52-week high"
	case models.PositionNearLow:
		position = "trading near the 52-week low"
	default:
		position = "trading mid-range for the year"
	}

	return fmt.Sprintf("%s. %s, %s.", trend, momentum, position)
}
