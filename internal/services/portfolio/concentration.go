package portfolio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bobmcallan/compass/internal/models"
)

// DetectConcentrationRisk grades single-position concentration: high when
// any weight exceeds the high threshold, moderate when any weight exceeds
// the moderate threshold but none the high one, low otherwise. Every
// offending ticker is named in a warning with its weight.
func (s *Service) DetectConcentrationRisk(allocations []models.Allocation) models.ConcentrationReport {
	report := models.ConcentrationReport{
		Level:    models.ConcentrationLow,
		Warnings: []string{},
	}

	for _, alloc := range allocations {
		switch {
		case alloc.WeightPct > s.thresholds.HighPct:
			report.Level = models.ConcentrationHigh
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s is %.1f%% of the portfolio, above the %.0f%% concentration limit",
					alloc.Ticker, alloc.WeightPct, s.thresholds.HighPct))
		case alloc.WeightPct > s.thresholds.ModeratePct:
			if report.Level != models.ConcentrationHigh {
				report.Level = models.ConcentrationModerate
			}
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s is %.1f%% of the portfolio, above the %.0f%% watch level",
					alloc.Ticker, alloc.WeightPct, s.thresholds.ModeratePct))
		}
	}

	report.LargestPositions = largestPositions(allocations, 3)

	return report
}

// largestPositions returns the top n allocations by weight without
// mutating the input slice
func largestPositions(allocations []models.Allocation, n int) []models.Allocation {
	sorted := make([]models.Allocation, len(allocations))
	copy(sorted, allocations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeightPct > sorted[j].WeightPct
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SuggestAction proposes a portfolio-level action for a ticker: buy when it
// is not held, trim when its weight exceeds the high concentration
// threshold, hold otherwise. Reasoning always cites the threshold crossed.
func (s *Service) SuggestAction(ticker string, portfolio *models.Portfolio, currentWeightPct float64) (models.Action, []string) {
	if portfolio == nil || portfolio.FindHolding(ticker) == nil {
		return models.ActionBuy, []string{
			fmt.Sprintf("%s is not currently held; a new position would add diversification", strings.ToUpper(ticker)),
		}
	}

	if currentWeightPct > s.thresholds.HighPct {
		return models.ActionTrim, []string{
			fmt.Sprintf("%s is %.1f%% of the portfolio, above the %.0f%% concentration limit; trimming reduces single-stock risk",
				strings.ToUpper(ticker), currentWeightPct, s.thresholds.HighPct),
		}
	}

	return models.ActionHold, []string{
		fmt.Sprintf("%s is %.1f%% of the portfolio, within the %.0f%% concentration limit",
			strings.ToUpper(ticker), currentWeightPct, s.thresholds.HighPct),
	}
}
