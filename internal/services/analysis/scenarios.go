package analysis

import (
	"github.com/bobmcallan/compass/internal/models"
)

// Fixed band probabilities, always summing to 100
const (
	bullProbabilityPct = 25
	baseProbabilityPct = 50
	bearProbabilityPct = 25
)

// scenarioNote is attached to every generated scenario summary
const scenarioNote = "Illustrative ranges only, not a forecast. Actual outcomes depend on market conditions outside this model."

type returnBand struct {
	min, max float64
}

type scenarioPreset struct {
	bear, base, bull returnBand
}

// scenarioPresets keys the band widths by risk tolerance, wider ranges for
// higher tolerance. The numbers are illustrative policy, not estimates.
var scenarioPresets = map[models.RiskTolerance]scenarioPreset{
	models.RiskToleranceLow: {
		bear: returnBand{-15, -5},
		base: returnBand{0, 8},
		bull: returnBand{10, 20},
	},
	models.RiskToleranceModerate: {
		bear: returnBand{-25, -10},
		base: returnBand{0, 12},
		bull: returnBand{15, 30},
	},
	models.RiskToleranceHigh: {
		bear: returnBand{-40, -20},
		base: returnBand{-5, 15},
		bull: returnBand{25, 50},
	},
}

// defaultHorizonMonths maps the profile horizon bucket to a scenario window
var defaultHorizonMonths = map[models.Horizon]int{
	models.HorizonShort:  24,
	models.HorizonMedium: 84,
	models.HorizonLong:   120,
}

// GenerateScenarios builds the bull/base/bear outcome bands for a stock.
// Probabilities are fixed at 25/50/25; the expected return is the
// probability-weighted average of the band midpoints.
func (s *Service) GenerateScenarios(profile *models.UserProfile, stock *models.StockData, horizonMonths int) models.ScenarioSummary {
	p := profile.Normalized()

	preset, ok := scenarioPresets[p.RiskTolerance]
	if !ok {
		preset = scenarioPresets[models.RiskToleranceModerate]
	}

	if horizonMonths <= 0 {
		horizonMonths = defaultHorizonMonths[p.Horizon]
	}

	summary := models.ScenarioSummary{
		HorizonMonths: horizonMonths,
		Bull: models.ScenarioBand{
			Label:          "bull",
			ProbabilityPct: bullProbabilityPct,
			MinReturnPct:   preset.bull.min,
			MaxReturnPct:   preset.bull.max,
			Narrative:      "Execution beats expectations and sentiment improves.",
		},
		Base: models.ScenarioBand{
			Label:          "base",
			ProbabilityPct: baseProbabilityPct,
			MinReturnPct:   preset.base.min,
			MaxReturnPct:   preset.base.max,
			Narrative:      "Business performs roughly in line with current expectations.",
		},
		Bear: models.ScenarioBand{
			Label:          "bear",
			ProbabilityPct: bearProbabilityPct,
			MinReturnPct:   preset.bear.min,
			MaxReturnPct:   preset.bear.max,
			Narrative:      "Results disappoint or market conditions deteriorate.",
		},
		MinReturnPct: preset.bear.min,
		MaxReturnPct: preset.bull.max,
		Note:         scenarioNote,
	}

	summary.ExpectedReturnPct = (summary.Bull.Midpoint()*bullProbabilityPct +
		summary.Base.Midpoint()*baseProbabilityPct +
		summary.Bear.Midpoint()*bearProbabilityPct) / 100

	return summary
}
