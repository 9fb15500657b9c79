// Package models defines data structures for Compass
package models

import (
	"errors"
	"time"
)

// Input-contract violations, the only hard failures in the analysis engine.
// Missing sub-fields inside an otherwise-present input always degrade to
// conservative defaults instead.
var (
	ErrMissingProfile = errors.New("user profile is required")
	ErrMissingStock   = errors.New("stock data is required")
)

// FundamentalsRating classifies the quality of a company's fundamentals
type FundamentalsRating string

const (
	FundamentalsStrong  FundamentalsRating = "strong"
	FundamentalsOK      FundamentalsRating = "ok"
	FundamentalsWeak    FundamentalsRating = "weak"
	FundamentalsUnknown FundamentalsRating = "unknown"
)

// ValuationRating classifies how a stock is priced relative to growth
type ValuationRating string

const (
	ValuationCheap   ValuationRating = "cheap"
	ValuationFair    ValuationRating = "fair"
	ValuationRich    ValuationRating = "rich"
	ValuationUnknown ValuationRating = "unknown"
)

// TrendDirection classifies the price trend from moving-average structure
type TrendDirection string

const (
	TrendBullish TrendDirection = "bullish"
	TrendBearish TrendDirection = "bearish"
	TrendNeutral TrendDirection = "neutral"
)

// MomentumSignal classifies RSI-based momentum
type MomentumSignal string

const (
	MomentumOverbought MomentumSignal = "overbought"
	MomentumOversold   MomentumSignal = "oversold"
	MomentumNeutral    MomentumSignal = "neutral"
)

// PricePosition places the current price within the 52-week range
type PricePosition string

const (
	PositionNearHigh PricePosition = "near_high"
	PositionNearLow  PricePosition = "near_low"
	PositionMidRange PricePosition = "mid_range"
)

// SentimentLean buckets the target-price implied return
type SentimentLean string

const (
	SentimentUpside   SentimentLean = "upside"
	SentimentDownside SentimentLean = "downside"
	SentimentNeutral  SentimentLean = "neutral"
)

// AnalysisSummary is the headline view of a single-stock analysis
type AnalysisSummary struct {
	Headline        string   `json:"headline"`
	RiskScore       int      `json:"risk_score"`       // 1 (defensive) to 10 (speculative)
	ConvictionScore int      `json:"conviction_score"` // 0-100, 3-month directional confidence
	KeyTakeaways    []string `json:"key_takeaways"`
}

// FundamentalView is the fundamentals section of an analysis
type FundamentalView struct {
	Rating     FundamentalsRating `json:"rating"`
	Commentary string             `json:"commentary"`
}

// ValuationView is the valuation section of an analysis
type ValuationView struct {
	Rating     ValuationRating `json:"rating"`
	PEGRatio   float64         `json:"peg_ratio,omitempty"`
	Commentary string          `json:"commentary"`
}

// TechnicalView is the technicals section of an analysis
type TechnicalView struct {
	Trend         TrendDirection `json:"trend"`
	Momentum      MomentumSignal `json:"momentum"`
	PricePosition PricePosition  `json:"price_position"`
	Commentary    string         `json:"commentary"`
}

// SentimentView is the sentiment section of an analysis
type SentimentView struct {
	ConsensusText    string        `json:"consensus_text"`
	ImpliedReturnPct float64       `json:"implied_return_pct"`
	Lean             SentimentLean `json:"lean"`
	Highlights       []string      `json:"highlights,omitempty"` // up to 3 news themes, verbatim
	Commentary       string        `json:"commentary"`
}

// ScenarioBand is one of the bull/base/bear outcome bands
type ScenarioBand struct {
	Label          string  `json:"label"`
	ProbabilityPct int     `json:"probability_pct"`
	MinReturnPct   float64 `json:"min_return_pct"`
	MaxReturnPct   float64 `json:"max_return_pct"`
	Narrative      string  `json:"narrative"`
}

// Midpoint returns the center of the band's return range
func (b ScenarioBand) Midpoint() float64 {
	return (b.MinReturnPct + b.MaxReturnPct) / 2
}

// ScenarioSummary holds the illustrative bull/base/bear outcome bands.
// Probabilities always sum to 100.
type ScenarioSummary struct {
	HorizonMonths     int          `json:"horizon_months"`
	Bull              ScenarioBand `json:"bull"`
	Base              ScenarioBand `json:"base"`
	Bear              ScenarioBand `json:"bear"`
	ExpectedReturnPct float64      `json:"expected_return_pct"` // probability-weighted band midpoints
	MinReturnPct      float64      `json:"min_return_pct"`
	MaxReturnPct      float64      `json:"max_return_pct"`
	Note              string       `json:"note"` // uncertainty disclaimer
}

// PlanningGuidance contains profile-keyed planning suggestions
type PlanningGuidance struct {
	PositionSizing string `json:"position_sizing"` // keyed by risk tolerance
	EntryTiming    string `json:"entry_timing"`    // keyed by horizon
	RiskNotes      string `json:"risk_notes"`      // keyed by objective
}

// AnalysisResult is the complete single-stock analysis output.
// One fresh value per call; the engine retains no reference after returning.
type AnalysisResult struct {
	Ticker      string           `json:"ticker"`
	Name        string           `json:"name"`
	Currency    string           `json:"currency,omitempty"`
	Summary     AnalysisSummary  `json:"summary"`
	Fundamental FundamentalView  `json:"fundamental"`
	Valuation   ValuationView    `json:"valuation"`
	Technical   TechnicalView    `json:"technical"`
	Sentiment   SentimentView    `json:"sentiment"`
	Scenarios   ScenarioSummary  `json:"scenarios"`
	Planning    PlanningGuidance `json:"planning"`
	GeneratedAt time.Time        `json:"generated_at"`
}
