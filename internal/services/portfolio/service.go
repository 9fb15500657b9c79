// Package portfolio provides portfolio valuation and risk services
package portfolio

import (
	"strings"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/interfaces"
	"github.com/bobmcallan/compass/internal/models"
)

// Compile-time interface check
var _ interfaces.PortfolioService = (*Service)(nil)

// Service implements PortfolioService. Every method recomputes from the
// portfolio and price maps it is handed. Nothing is cached, so stale
// values can never be presented as current. Missing data degrades to a
// conservative default instead of erroring.
type Service struct {
	logger     *common.Logger
	thresholds common.ConcentrationPolicy
}

// NewService creates a new portfolio service
func NewService(logger *common.Logger, thresholds common.ConcentrationPolicy) *Service {
	return &Service{
		logger:     logger,
		thresholds: thresholds,
	}
}

// neutralBeta is assumed for any holding missing a beta, so portfolio beta
// is never computed over a silently-shrunk set
const neutralBeta = 1.0

// CalculateAllocation values each holding and computes portfolio weights.
// Holdings without a price are valued at zero but still enumerated; weights
// sum to 100% over the priced holdings whenever total value is positive.
func (s *Service) CalculateAllocation(portfolio *models.Portfolio, prices map[string]float64) []models.Allocation {
	if portfolio == nil || len(portfolio.Holdings) == 0 {
		return []models.Allocation{}
	}

	allocations := make([]models.Allocation, 0, len(portfolio.Holdings))
	totalValue := 0.0

	for _, h := range portfolio.Holdings {
		price, ok := lookupPrice(prices, h.Ticker)
		alloc := models.Allocation{
			Ticker:       h.Ticker,
			PriceMissing: !ok,
		}
		if ok {
			alloc.Value = h.Shares * price
			alloc.GainLoss = alloc.Value - h.CostBasis()
			if cost := h.CostBasis(); cost > 0 {
				alloc.GainLossPct = alloc.GainLoss / cost * 100
			}
			totalValue += alloc.Value
		}
		allocations = append(allocations, alloc)
	}

	if totalValue > 0 {
		for i := range allocations {
			allocations[i].WeightPct = allocations[i].Value / totalValue * 100
		}
	}

	return allocations
}

// CalculateBeta computes the value-weighted average beta across holdings.
// A holding missing a beta contributes the neutral 1.0.
func (s *Service) CalculateBeta(holdings []models.Holding, betas map[string]float64, prices map[string]float64) float64 {
	totalValue := 0.0
	weighted := 0.0

	for _, h := range holdings {
		price, ok := lookupPrice(prices, h.Ticker)
		if !ok {
			continue
		}
		value := h.Shares * price
		beta := neutralBeta
		if b, found := lookupPrice(betas, h.Ticker); found {
			beta = b
		}
		totalValue += value
		weighted += value * beta
	}

	if totalValue <= 0 {
		return 0
	}
	return weighted / totalValue
}

// CalculateMetrics computes total value, cost, gain/loss, and beta. An
// empty portfolio returns all-zero metrics, never NaN.
func (s *Service) CalculateMetrics(portfolio *models.Portfolio, prices map[string]float64, betas map[string]float64) models.PortfolioMetrics {
	metrics := models.PortfolioMetrics{Volatility: models.VolatilityLow}
	if portfolio == nil || len(portfolio.Holdings) == 0 {
		return metrics
	}

	for _, h := range portfolio.Holdings {
		metrics.TotalCost += h.CostBasis()
		if price, ok := lookupPrice(prices, h.Ticker); ok {
			metrics.TotalValue += h.Shares * price
		}
	}

	metrics.TotalGainLoss = metrics.TotalValue - metrics.TotalCost
	if metrics.TotalCost > 0 {
		metrics.TotalGainLossPct = metrics.TotalGainLoss / metrics.TotalCost * 100
	}

	metrics.Beta = s.CalculateBeta(portfolio.Holdings, betas, prices)
	metrics.Volatility = classifyVolatility(metrics.Beta)

	return metrics
}

// classifyVolatility buckets portfolio volatility from value-weighted beta
func classifyVolatility(beta float64) models.VolatilityLevel {
	switch {
	case beta > 1.2:
		return models.VolatilityHigh
	case beta >= 0.9:
		return models.VolatilityModerate
	default:
		return models.VolatilityLow
	}
}

// BuildContext assembles the just-in-time portfolio context for one ticker:
// current holding (if any), portfolio metrics, weight, and the suggested
// portfolio-level action.
func (s *Service) BuildContext(ticker string, portfolio *models.Portfolio, prices map[string]float64, betas map[string]float64) *models.PortfolioContext {
	if portfolio == nil {
		return nil
	}

	metrics := s.CalculateMetrics(portfolio, prices, betas)

	weightPct := 0.0
	for _, alloc := range s.CalculateAllocation(portfolio, prices) {
		if strings.EqualFold(alloc.Ticker, ticker) {
			weightPct += alloc.WeightPct
		}
	}

	action, reasoning := s.SuggestAction(ticker, portfolio, weightPct)

	s.logger.Debug().
		Str("ticker", ticker).
		Str("portfolio", portfolio.Name).
		Float64("weight_pct", weightPct).
		Str("suggested_action", string(action)).
		Msg("Portfolio context built")

	return &models.PortfolioContext{
		Ticker:           ticker,
		Holding:          portfolio.FindHolding(ticker),
		Metrics:          metrics,
		SuggestedAction:  action,
		Reasoning:        reasoning,
		CurrentWeightPct: weightPct,
	}
}

// lookupPrice is a case-insensitive map lookup keyed by ticker
func lookupPrice(m map[string]float64, ticker string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	if v, ok := m[ticker]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, ticker) {
			return v, true
		}
	}
	return 0, false
}
