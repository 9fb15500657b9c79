// Package advisor synthesizes stock analysis and portfolio context into a
// final bounded recommendation
package advisor

import (
	"fmt"
	"strings"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/interfaces"
	"github.com/bobmcallan/compass/internal/models"
)

// Compile-time interface check
var _ interfaces.AdvisorService = (*Service)(nil)

// Service implements AdvisorService. BuildRecommendation is a total
// function of its inputs: identical inputs (with a frozen clock) always
// produce identical output.
type Service struct {
	logger        *common.Logger
	clock         common.Clock
	confidence    common.ConfidencePolicy
	concentration common.ConcentrationPolicy
}

// NewService creates a new advisor service
func NewService(logger *common.Logger, clock common.Clock, policy common.PolicyConfig) *Service {
	return &Service{
		logger:        logger,
		clock:         clock,
		confidence:    policy.Confidence,
		concentration: policy.Concentration,
	}
}

// Bounds on the explanation lists
const (
	minRationale = 3
	maxRationale = 6
	maxRiskFlags = 3
)

var actionLabels = map[models.Action]string{
	models.ActionBuy:  "Buy",
	models.ActionHold: "Hold",
	models.ActionTrim: "Trim",
	models.ActionSell: "Sell",
}

var horizonTimeframes = map[models.Horizon]models.Timeframe{
	models.HorizonShort:  models.TimeframeShort,
	models.HorizonMedium: models.TimeframeMedium,
	models.HorizonLong:   models.TimeframeLong,
}

// BuildRecommendation blends the analysis, profile, and optional portfolio
// context into the final action. Returns (nil, nil) for a missing or
// ticker-less analysis: a recommendation is never fabricated without an
// identified instrument.
func (s *Service) BuildRecommendation(result *models.AnalysisResult, profile *models.UserProfile, portfolioCtx *models.PortfolioContext) (*models.Recommendation, error) {
	if result == nil || strings.TrimSpace(result.Ticker) == "" {
		return nil, nil
	}

	var p models.UserProfile
	if profile != nil {
		p = *profile
	}
	p = p.Normalized()

	confidence, fitReasons := foldConfidence(result.Summary.ConvictionScore, result.Summary.RiskScore, p.RiskTolerance)
	action := s.primaryAction(confidence, portfolioCtx)

	rec := &models.Recommendation{
		Ticker:          result.Ticker,
		PrimaryAction:   action,
		ConfidenceScore: confidence,
		Timeframe:       horizonTimeframes[p.Horizon],
		Headline:        s.buildHeadline(result.Ticker, action, confidence),
		Rationale:       s.buildRationale(result, confidence, fitReasons, portfolioCtx),
		RiskFlags:       s.buildRiskFlags(result, p, portfolioCtx),
		Notes:           buildNotes(result),
		GeneratedAt:     s.clock.Now(),
	}

	s.logger.Debug().
		Str("ticker", rec.Ticker).
		Str("action", string(rec.PrimaryAction)).
		Int("confidence", rec.ConfidenceScore).
		Int("risk_flags", len(rec.RiskFlags)).
		Msg("Recommendation built")

	return rec, nil
}

// primaryAction selects the action. The position-size guardrail always
// overrides the confidence default: portfolio risk management trumps
// single-stock conviction.
func (s *Service) primaryAction(confidence int, ctx *models.PortfolioContext) models.Action {
	if ctx != nil {
		if ctx.CurrentWeightPct >= s.concentration.EmergencyPct {
			return models.ActionSell
		}
		if ctx.CurrentWeightPct > s.concentration.ModeratePct {
			return models.ActionTrim
		}
	}

	held := ctx != nil && ctx.Holding != nil
	if confidence >= s.confidence.HighThreshold && !held {
		return models.ActionBuy
	}
	return models.ActionHold
}

// confidenceTier labels the score using the same cut-points as action
// selection
func (s *Service) confidenceTier(confidence int) string {
	switch {
	case confidence >= s.confidence.HighThreshold:
		return "High Confidence"
	case confidence < s.confidence.LowThreshold:
		return "Low Confidence"
	default:
		return "Moderate Confidence"
	}
}

func (s *Service) buildHeadline(ticker string, action models.Action, confidence int) string {
	return fmt.Sprintf("%s: %s, %s (%d/100)",
		strings.ToUpper(ticker), actionLabels[action], s.confidenceTier(confidence), confidence)
}

// buildRationale assembles 3-6 bullets: conviction, risk/tolerance fit,
// and timeframe always; portfolio-fit bullets only when context exists.
func (s *Service) buildRationale(result *models.AnalysisResult, confidence int, fitReasons []string, ctx *models.PortfolioContext) []string {
	rationale := make([]string, 0, maxRationale)

	rationale = append(rationale, fmt.Sprintf("Analysis conviction is %d/100 with %s fundamentals and a %s trend",
		result.Summary.ConvictionScore, result.Fundamental.Rating, result.Technical.Trend))
	rationale = append(rationale, fitReasons...)
	rationale = append(rationale, fmt.Sprintf("Scenario range spans %.0f%% to %.0f%% with an expected return of %.1f%%",
		result.Scenarios.MinReturnPct, result.Scenarios.MaxReturnPct, result.Scenarios.ExpectedReturnPct))

	if ctx != nil {
		if ctx.Holding != nil {
			rationale = append(rationale, fmt.Sprintf("Existing position is %.1f%% of the portfolio", ctx.CurrentWeightPct))
		} else {
			rationale = append(rationale, "The stock is not currently held in the portfolio")
		}
		if len(ctx.Reasoning) > 0 {
			rationale = append(rationale, ctx.Reasoning[0])
		}
	}

	if len(rationale) > maxRationale {
		rationale = rationale[:maxRationale]
	}
	for len(rationale) < minRationale {
		rationale = append(rationale, "No additional factors changed the assessment")
	}
	return rationale
}

// buildRiskFlags raises at most one flag per condition: high stock risk,
// concentration above the watch level, and a risk/tolerance mismatch. The
// cap is structural: three conditions, three possible flags.
func (s *Service) buildRiskFlags(result *models.AnalysisResult, p models.UserProfile, ctx *models.PortfolioContext) []string {
	flags := make([]string, 0, maxRiskFlags)

	if result.Summary.RiskScore >= 8 {
		flags = append(flags, fmt.Sprintf("Stock risk score is %d/10", result.Summary.RiskScore))
	}

	if ctx != nil && ctx.CurrentWeightPct > s.concentration.ModeratePct {
		flags = append(flags, fmt.Sprintf("Concentration risk: position is %.1f%% of the portfolio, above the %.0f%% watch level",
			ctx.CurrentWeightPct, s.concentration.ModeratePct))
	}

	if riskFlagExceeds(result.Summary.RiskScore, p.RiskTolerance) {
		flags = append(flags, fmt.Sprintf("Stock risk (%d/10) exceeds your %s risk tolerance",
			result.Summary.RiskScore, p.RiskTolerance))
	}

	return flags
}

// buildNotes surfaces data-quality caveats carried through from the analysis
func buildNotes(result *models.AnalysisResult) string {
	var notes []string
	if result.Fundamental.Rating == models.FundamentalsUnknown {
		notes = append(notes, "fundamental data was unavailable")
	}
	if result.Valuation.Rating == models.ValuationUnknown {
		notes = append(notes, "valuation data was unavailable")
	}
	if len(notes) == 0 {
		return ""
	}
	return "Assessment degraded to conservative defaults: " + strings.Join(notes, "; ") + "."
}
