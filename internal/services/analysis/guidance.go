package analysis

import (
	"github.com/bobmcallan/compass/internal/models"
)

// Planning guidance is a pure lookup keyed on the profile: position sizing
// by risk tolerance, entry timing by horizon, risk notes by objective.

var positionSizingByTolerance = map[models.RiskTolerance]string{
	models.RiskToleranceLow:      "Keep any single position small; a starter position of 1-2% of investable assets limits downside while you build familiarity.",
	models.RiskToleranceModerate: "A position of 3-5% of investable assets balances meaningful exposure against single-stock risk.",
	models.RiskToleranceHigh:     "Positions up to 5-8% of investable assets are workable, provided the rest of the portfolio stays diversified.",
}

var entryTimingByHorizon = map[models.Horizon]string{
	models.HorizonShort:  "With a 1-3 year window, stagger entries over several weeks and avoid buying into momentum extremes.",
	models.HorizonMedium: "With a 5-10 year window, dollar-cost averaging over a few months matters more than the exact entry point.",
	models.HorizonLong:   "With a 10+ year window, time in the market dominates entry timing; invest when capital is available.",
}

var riskNotesByObjective = map[models.Objective]string{
	models.ObjectiveGrowth:   "Growth objectives concentrate risk in earnings delivery; expect larger drawdowns and size positions so you can hold through them.",
	models.ObjectiveIncome:   "Income objectives depend on dividend sustainability; watch payout ratios and balance-sheet leverage more than price swings.",
	models.ObjectiveBalanced: "A balanced objective argues for pairing this position with holdings of a different style to dampen single-factor risk.",
}

// GeneratePlanningGuidance returns the canned guidance for a profile
func (s *Service) GeneratePlanningGuidance(profile *models.UserProfile) models.PlanningGuidance {
	p := profile.Normalized()

	return models.PlanningGuidance{
		PositionSizing: positionSizingByTolerance[p.RiskTolerance],
		EntryTiming:    entryTimingByHorizon[p.Horizon],
		RiskNotes:      riskNotesByObjective[p.Objective],
	}
}
