// Package interfaces defines service contracts for Compass
package interfaces

import (
	"github.com/bobmcallan/compass/internal/models"
)

// AnalysisService produces single-stock analyses
type AnalysisService interface {
	// AnalyzeStock classifies fundamentals, valuation, technicals, and
	// sentiment for one stock and generates scenarios and planning guidance.
	// Fails only on a missing profile or missing stock snapshot.
	AnalyzeStock(profile *models.UserProfile, stock *models.StockData, options AnalyzeOptions) (*models.AnalysisResult, error)
}

// AnalyzeOptions configures a single-stock analysis
type AnalyzeOptions struct {
	HorizonMonths int // scenario horizon; 0 derives it from the profile horizon
}

// PortfolioService values portfolios and grades their risk
type PortfolioService interface {
	// CalculateAllocation values each holding and computes portfolio weights
	CalculateAllocation(portfolio *models.Portfolio, prices map[string]float64) []models.Allocation

	// CalculateMetrics computes total value/cost/gain and value-weighted beta
	CalculateMetrics(portfolio *models.Portfolio, prices map[string]float64, betas map[string]float64) models.PortfolioMetrics

	// DetectConcentrationRisk grades single-position concentration
	DetectConcentrationRisk(allocations []models.Allocation) models.ConcentrationReport

	// SuggestAction proposes a portfolio-level action for one ticker
	SuggestAction(ticker string, portfolio *models.Portfolio, currentWeightPct float64) (models.Action, []string)

	// BuildContext assembles the just-in-time portfolio context for a ticker
	BuildContext(ticker string, portfolio *models.Portfolio, prices map[string]float64, betas map[string]float64) *models.PortfolioContext
}

// AdvisorService blends a stock analysis with portfolio context into a
// final bounded recommendation
type AdvisorService interface {
	// BuildRecommendation synthesizes the final action with guardrails.
	// Returns (nil, nil) when the analysis carries no ticker: a
	// recommendation is never fabricated without an identified instrument.
	BuildRecommendation(result *models.AnalysisResult, profile *models.UserProfile, portfolioCtx *models.PortfolioContext) (*models.Recommendation, error)
}
