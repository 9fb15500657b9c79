// Package models defines data structures for Compass
package models

// RiskTolerance categorizes how much drawdown a user can stomach
type RiskTolerance string

const (
	RiskToleranceLow      RiskTolerance = "low"
	RiskToleranceModerate RiskTolerance = "moderate"
	RiskToleranceHigh     RiskTolerance = "high"
)

// Valid reports whether the tolerance is one of the known levels
func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskToleranceLow, RiskToleranceModerate, RiskToleranceHigh:
		return true
	}
	return false
}

// Horizon buckets the user's investment timeframe
type Horizon string

const (
	HorizonShort  Horizon = "short"  // 1-3 years
	HorizonMedium Horizon = "medium" // 5-10 years
	HorizonLong   Horizon = "long"   // 10+ years
)

// Valid reports whether the horizon is one of the known buckets
func (h Horizon) Valid() bool {
	switch h {
	case HorizonShort, HorizonMedium, HorizonLong:
		return true
	}
	return false
}

// Objective captures the user's primary investment goal
type Objective string

const (
	ObjectiveGrowth   Objective = "growth"
	ObjectiveIncome   Objective = "income"
	ObjectiveBalanced Objective = "balanced"
)

// Valid reports whether the objective is one of the known goals
func (o Objective) Valid() bool {
	switch o {
	case ObjectiveGrowth, ObjectiveIncome, ObjectiveBalanced:
		return true
	}
	return false
}

// UserProfile describes the investor the analysis is tailored for.
// Immutable per call: engines read it and never retain a reference.
type UserProfile struct {
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
	Horizon       Horizon       `json:"horizon"`
	Objective     Objective     `json:"objective"`
}

// Normalized returns a copy with unknown enum values replaced by the
// conservative defaults (moderate / medium / balanced).
func (p UserProfile) Normalized() UserProfile {
	if !p.RiskTolerance.Valid() {
		p.RiskTolerance = RiskToleranceModerate
	}
	if !p.Horizon.Valid() {
		p.Horizon = HorizonMedium
	}
	if !p.Objective.Valid() {
		p.Objective = ObjectiveBalanced
	}
	return p
}
