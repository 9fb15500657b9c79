package advisor

import (
	"fmt"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/models"
)

// adjustment is one additive confidence delta with its explanation.
// Rules return nil when they have nothing to say.
type adjustment struct {
	Delta  int
	Reason string
}

// confidenceRule is an independent, additive rule over the stock risk
// score and the user's tolerance. Rules are evaluated in order and their
// deltas folded onto the conviction score.
type confidenceRule func(riskScore int, tolerance models.RiskTolerance) *adjustment

var confidenceRules = []confidenceRule{
	riskToleranceFit,
}

// comfortCeiling maps tolerance to the highest risk score (1-10) the user
// is assumed comfortable holding. Policy numbers, not validated strategy.
var comfortCeiling = map[models.RiskTolerance]int{
	models.RiskToleranceLow:      2,
	models.RiskToleranceModerate: 4,
	models.RiskToleranceHigh:     7,
}

// Signed deltas applied by riskToleranceFit. A large mismatch (the same
// cut-off that raises a risk flag) subtracts heavily; a mild one subtracts
// a little; risk well under the ceiling earns a small bonus.
const (
	largeMismatchExceed = 4
	largeMismatchDelta  = -20
	mildMismatchDelta   = -10
	comfortMarginBonus  = 5
)

// riskToleranceFit scores the interaction of stock risk and user
// tolerance. Matched risk and tolerance leaves confidence unchanged.
func riskToleranceFit(riskScore int, tolerance models.RiskTolerance) *adjustment {
	ceiling, ok := comfortCeiling[tolerance]
	if !ok {
		ceiling = comfortCeiling[models.RiskToleranceModerate]
	}

	exceed := riskScore - ceiling
	switch {
	case exceed >= largeMismatchExceed:
		return &adjustment{
			Delta:  largeMismatchDelta,
			Reason: fmt.Sprintf("Stock risk (%d/10) is well above your %s risk tolerance", riskScore, tolerance),
		}
	case exceed >= 1:
		return &adjustment{
			Delta:  mildMismatchDelta,
			Reason: fmt.Sprintf("Stock risk (%d/10) runs slightly above your %s risk tolerance", riskScore, tolerance),
		}
	case exceed <= -largeMismatchExceed:
		return &adjustment{
			Delta:  comfortMarginBonus,
			Reason: fmt.Sprintf("Stock risk (%d/10) sits comfortably within your %s risk tolerance", riskScore, tolerance),
		}
	default:
		return &adjustment{
			Delta:  0,
			Reason: fmt.Sprintf("Stock risk (%d/10) is aligned with your %s risk tolerance", riskScore, tolerance),
		}
	}
}

// foldConfidence applies every rule to the base conviction score and
// clamps the result to 0-100. The collected reasons feed the rationale.
func foldConfidence(base, riskScore int, tolerance models.RiskTolerance) (int, []string) {
	score := base
	reasons := make([]string, 0, len(confidenceRules))

	for _, rule := range confidenceRules {
		if adj := rule(riskScore, tolerance); adj != nil {
			score += adj.Delta
			if adj.Reason != "" {
				reasons = append(reasons, adj.Reason)
			}
		}
	}

	return common.ClampInt(score, 0, 100), reasons
}

// riskFlagExceeds reports whether the risk/tolerance mismatch is large
// enough to warrant a risk flag. Same cut-off as the large penalty,
// so flag and penalty can never disagree.
func riskFlagExceeds(riskScore int, tolerance models.RiskTolerance) bool {
	ceiling, ok := comfortCeiling[tolerance]
	if !ok {
		ceiling = comfortCeiling[models.RiskToleranceModerate]
	}
	return riskScore-ceiling >= largeMismatchExceed
}
