// Package analysis provides the single-stock analysis engine
package analysis

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/interfaces"
	"github.com/bobmcallan/compass/internal/models"
)

// Compile-time interface check
var _ interfaces.AnalysisService = (*Service)(nil)

// Service implements AnalysisService. All methods are pure computations
// over their arguments; the only ambient input is the injected clock.
type Service struct {
	logger       *common.Logger
	clock        common.Clock
	fundamentals FundamentalThresholds
	valuation    ValuationThresholds
}

// NewService creates a new analysis service with the default thresholds
func NewService(logger *common.Logger, clock common.Clock) *Service {
	return &Service{
		logger:       logger,
		clock:        clock,
		fundamentals: DefaultFundamentalThresholds,
		valuation:    DefaultValuationThresholds,
	}
}

// AnalyzeStock classifies fundamentals, valuation, technicals, and
// sentiment, generates scenarios and planning guidance, and assembles the
// complete analysis. A missing profile or stock snapshot is the one hard
// failure; missing sections inside the snapshot degrade to conservative
// defaults.
func (s *Service) AnalyzeStock(profile *models.UserProfile, stock *models.StockData, options interfaces.AnalyzeOptions) (*models.AnalysisResult, error) {
	if profile == nil {
		return nil, models.ErrMissingProfile
	}
	if stock == nil {
		return nil, models.ErrMissingStock
	}

	if stock.Fundamentals == nil {
		s.logger.Warn().Str("ticker", stock.Ticker).Msg("Fundamentals missing, degrading to conservative defaults")
	}

	fundamentalRating := s.ClassifyFundamentals(stock)
	valuationRating, peg := s.ClassifyValuation(stock)
	technicalView := s.AnalyzeTechnicals(stock)
	sentimentView := s.AnalyzeSentiment(stock)

	conviction := convictionScore(fundamentalRating, valuationRating, technicalView, sentimentView)
	risk := riskScore(stock, fundamentalRating, technicalView)

	result := &models.AnalysisResult{
		Ticker:   stock.Ticker,
		Name:     stock.Name,
		Currency: stock.Currency,
		Summary: models.AnalysisSummary{
			Headline:        buildHeadline(stock.Ticker, fundamentalRating, valuationRating, technicalView.Trend),
			RiskScore:       risk,
			ConvictionScore: conviction,
		},
		Fundamental: models.FundamentalView{
			Rating:     fundamentalRating,
			Commentary: fundamentalCommentary(fundamentalRating, stock.Fundamentals),
		},
		Valuation: models.ValuationView{
			Rating:     valuationRating,
			PEGRatio:   peg,
			Commentary: valuationCommentary(valuationRating, peg, stock.Fundamentals),
		},
		Technical:   technicalView,
		Sentiment:   sentimentView,
		Scenarios:   s.GenerateScenarios(profile, stock, options.HorizonMonths),
		Planning:    s.GeneratePlanningGuidance(profile),
		GeneratedAt: s.clock.Now(),
	}
	result.Summary.KeyTakeaways = buildKeyTakeaways(result)

	s.logger.Debug().
		Str("ticker", stock.Ticker).
		Str("fundamentals", string(fundamentalRating)).
		Str("valuation", string(valuationRating)).
		Str("trend", string(technicalView.Trend)).
		Int("conviction", conviction).
		Int("risk", risk).
		Msg("Stock analysis complete")

	return result, nil
}

// buildHeadline renders the one-line summary of the classified views
func buildHeadline(ticker string, fundamental models.FundamentalsRating, valuation models.ValuationRating, trend models.TrendDirection) string {
	return fmt.Sprintf("%s: %s fundamentals, %s valuation, %s trend",
		strings.ToUpper(ticker), fundamental, valuation, trend)
}

// buildKeyTakeaways collects the most decision-relevant observations,
// capped at five bullets
func buildKeyTakeaways(result *models.AnalysisResult) []string {
	takeaways := make([]string, 0, 5)

	takeaways = append(takeaways, result.Fundamental.Commentary)
	if result.Valuation.Rating != models.ValuationUnknown {
		takeaways = append(takeaways, result.Valuation.Commentary)
	}
	takeaways = append(takeaways, result.Technical.Commentary)

	if result.Sentiment.Lean != models.SentimentNeutral {
		takeaways = append(takeaways, result.Sentiment.Commentary)
	}

	if len(result.Sentiment.Highlights) > 0 {
		takeaways = append(takeaways, "In the news: "+strings.Join(result.Sentiment.Highlights, "; "))
	}

	if len(takeaways) > 5 {
		takeaways = takeaways[:5]
	}
	return takeaways
}
