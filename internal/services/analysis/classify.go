package analysis

import (
	"fmt"

	"github.com/bobmcallan/compass/internal/models"
)

// FundamentalThresholds groups the fundamentals classification cut-offs.
// A strong rating requires every Strong* signal to pass; a weak rating
// requires both Weak* signals. The two sets are disjoint.
type FundamentalThresholds struct {
	StrongEPSGrowthPct float64
	StrongNetMarginPct float64
	StrongFCFYieldPct  float64
	StrongROEPct       float64
	WeakEPSGrowthPct   float64
	WeakNetMarginPct   float64
}

// DefaultFundamentalThresholds are the production cut-offs
var DefaultFundamentalThresholds = FundamentalThresholds{
	StrongEPSGrowthPct: 15,
	StrongNetMarginPct: 20,
	StrongFCFYieldPct:  3,
	StrongROEPct:       20,
	WeakEPSGrowthPct:   5,
	WeakNetMarginPct:   10,
}

// ValuationThresholds groups the valuation classification cut-offs.
// Cheap requires both conditions; rich triggers on either one alone.
type ValuationThresholds struct {
	CheapMaxPEG       float64
	CheapMaxForwardPE float64
	RichMinPEG        float64
	RichMinForwardPE  float64
	MinGrowthFloor    float64 // PEG denominator floor, avoids sign-flip at low/negative growth
}

// DefaultValuationThresholds are the production cut-offs
var DefaultValuationThresholds = ValuationThresholds{
	CheapMaxPEG:       1.0,
	CheapMaxForwardPE: 20,
	RichMinPEG:        2.5,
	RichMinForwardPE:  40,
	MinGrowthFloor:    1,
}

// ClassifyFundamentals rates a stock's fundamentals. Returns unknown only
// when the fundamentals section is absent entirely; with fundamentals
// present the classification is total.
func (s *Service) ClassifyFundamentals(stock *models.StockData) models.FundamentalsRating {
	f := stock.Fundamentals
	if f == nil {
		return models.FundamentalsUnknown
	}

	t := s.fundamentals
	if f.EPSGrowthPct > t.StrongEPSGrowthPct &&
		f.NetMarginPct > t.StrongNetMarginPct &&
		f.FCFYieldPct > t.StrongFCFYieldPct &&
		f.ROEPct > t.StrongROEPct {
		return models.FundamentalsStrong
	}

	if f.EPSGrowthPct < t.WeakEPSGrowthPct && f.NetMarginPct < t.WeakNetMarginPct {
		return models.FundamentalsWeak
	}

	return models.FundamentalsOK
}

// ClassifyValuation rates how the stock is priced relative to its growth.
// The second return value is the PEG ratio used (0 when unknown).
func (s *Service) ClassifyValuation(stock *models.StockData) (models.ValuationRating, float64) {
	f := stock.Fundamentals
	if f == nil || f.ForwardPE <= 0 {
		return models.ValuationUnknown, 0
	}

	t := s.valuation
	growth := f.EPSGrowthPct
	if growth < t.MinGrowthFloor {
		growth = t.MinGrowthFloor
	}
	peg := f.ForwardPE / growth

	switch {
	case peg < t.CheapMaxPEG && f.ForwardPE < t.CheapMaxForwardPE:
		return models.ValuationCheap, peg
	case peg > t.RichMinPEG || f.ForwardPE > t.RichMinForwardPE:
		return models.ValuationRich, peg
	default:
		return models.ValuationFair, peg
	}
}

// fundamentalCommentary renders a one-line summary of the rating
func fundamentalCommentary(rating models.FundamentalsRating, f *models.Fundamentals) string {
	switch rating {
	case models.FundamentalsStrong:
		return fmt.Sprintf("Strong fundamentals: EPS growth %.1f%%, net margin %.1f%%, FCF yield %.1f%%, ROE %.1f%%.",
			f.EPSGrowthPct, f.NetMarginPct, f.FCFYieldPct, f.ROEPct)
	case models.FundamentalsWeak:
		return fmt.Sprintf("Weak fundamentals: EPS growth %.1f%% with net margin %.1f%%.",
			f.EPSGrowthPct, f.NetMarginPct)
	case models.FundamentalsUnknown:
		return "Fundamental data unavailable."
	default:
		return fmt.Sprintf("Mixed fundamentals: EPS growth %.1f%%, net margin %.1f%%, ROE %.1f%%.",
			f.EPSGrowthPct, f.NetMarginPct, f.ROEPct)
	}
}

// valuationCommentary renders a one-line summary of the rating
func valuationCommentary(rating models.ValuationRating, peg float64, f *models.Fundamentals) string {
	switch rating {
	case models.ValuationCheap:
		return fmt.Sprintf("Attractively priced: PEG %.2f on a forward P/E of %.1f.", peg, f.ForwardPE)
	case models.ValuationRich:
		return fmt.Sprintf("Expensive: PEG %.2f on a forward P/E of %.1f.", peg, f.ForwardPE)
	case models.ValuationUnknown:
		return "Valuation data unavailable."
	default:
		return fmt.Sprintf("Fairly priced: PEG %.2f on a forward P/E of %.1f.", peg, f.ForwardPE)
	}
}
