// Package models defines data structures for Compass
package models

import "time"

// Action is the closed set of portfolio actions a recommendation can name
type Action string

const (
	ActionBuy  Action = "buy"
	ActionHold Action = "hold"
	ActionTrim Action = "trim"
	ActionSell Action = "sell"
)

// Timeframe maps the user's horizon bucket to a recommendation window
type Timeframe string

const (
	TimeframeShort  Timeframe = "short_term"
	TimeframeMedium Timeframe = "medium_term"
	TimeframeLong   Timeframe = "long_term"
)

// Recommendation is the final blended output of the analysis and portfolio
// engines: a bounded, explainable action for one ticker. Stateless, one
// value per (stock, profile, portfolio-context) combination, identical
// inputs produce identical output.
type Recommendation struct {
	Ticker          string    `json:"ticker"`
	PrimaryAction   Action    `json:"primary_action"`
	ConfidenceScore int       `json:"confidence_score"` // 0-100
	Timeframe       Timeframe `json:"timeframe"`
	Headline        string    `json:"headline"`
	Rationale       []string  `json:"rationale"`            // always 3-6 entries
	RiskFlags       []string  `json:"risk_flags,omitempty"` // at most 3 entries
	Notes           string    `json:"notes,omitempty"`
	GeneratedAt     time.Time `json:"generated_at"`
}
