// Package models defines data structures for Compass
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Portfolio represents a stock portfolio. Holdings order is preserved.
// Lifecycle (lot add/remove) is owned by the persistence collaborator;
// the engines only ever read it.
type Portfolio struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Holdings  []Holding `json:"holdings"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Holding represents a portfolio position
type Holding struct {
	Ticker       string    `json:"ticker"`
	Shares       float64   `json:"shares"`
	AvgCost      float64   `json:"avg_cost"` // average cost basis per share
	PurchaseDate time.Time `json:"purchase_date,omitempty"`
}

// CostBasis returns the total cost of the position
func (h Holding) CostBasis() float64 {
	return h.Shares * h.AvgCost
}

// NewPortfolio creates an empty portfolio with a generated ID
func NewPortfolio(name string, now time.Time) *Portfolio {
	return &Portfolio{
		ID:        uuid.NewString(),
		Name:      name,
		Holdings:  []Holding{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindHolding returns the holding for ticker (case-insensitive), or nil
func (p *Portfolio) FindHolding(ticker string) *Holding {
	if p == nil {
		return nil
	}
	for i := range p.Holdings {
		if strings.EqualFold(p.Holdings[i].Ticker, ticker) {
			return &p.Holdings[i]
		}
	}
	return nil
}

// AddHolding appends a position and bumps UpdatedAt
func (p *Portfolio) AddHolding(h Holding, now time.Time) {
	p.Holdings = append(p.Holdings, h)
	p.UpdatedAt = now
}

// RemoveHolding removes all positions for ticker and reports whether any
// were removed
func (p *Portfolio) RemoveHolding(ticker string, now time.Time) bool {
	kept := make([]Holding, 0, len(p.Holdings))
	removed := false
	for _, h := range p.Holdings {
		if strings.EqualFold(h.Ticker, ticker) {
			removed = true
			continue
		}
		kept = append(kept, h)
	}
	if removed {
		p.Holdings = kept
		p.UpdatedAt = now
	}
	return removed
}

// Allocation is the valued weight of one holding. Holdings missing a price
// are valued at zero but still enumerated, never dropped silently.
type Allocation struct {
	Ticker       string  `json:"ticker"`
	Value        float64 `json:"value"`
	WeightPct    float64 `json:"weight_pct"`
	GainLoss     float64 `json:"gain_loss"`
	GainLossPct  float64 `json:"gain_loss_pct"`
	PriceMissing bool    `json:"price_missing,omitempty"`
}

// VolatilityLevel buckets portfolio volatility derived from beta
type VolatilityLevel string

const (
	VolatilityLow      VolatilityLevel = "low"
	VolatilityModerate VolatilityLevel = "moderate"
	VolatilityHigh     VolatilityLevel = "high"
)

// PortfolioMetrics summarizes a portfolio's value and risk posture.
// Always recomputed from the current portfolio and prices, never cached,
// so staleness can't be presented as current.
type PortfolioMetrics struct {
	TotalValue       float64         `json:"total_value"`
	TotalCost        float64         `json:"total_cost"`
	TotalGainLoss    float64         `json:"total_gain_loss"`
	TotalGainLossPct float64         `json:"total_gain_loss_pct"`
	Beta             float64         `json:"beta"`
	Volatility       VolatilityLevel `json:"volatility"`
}

// ConcentrationLevel grades single-position concentration risk
type ConcentrationLevel string

const (
	ConcentrationLow      ConcentrationLevel = "low"
	ConcentrationModerate ConcentrationLevel = "moderate"
	ConcentrationHigh     ConcentrationLevel = "high"
)

// ConcentrationReport names every position exceeding a concentration
// threshold and lists the largest positions (at most 3)
type ConcentrationReport struct {
	Level            ConcentrationLevel `json:"level"`
	Warnings         []string           `json:"warnings"`
	LargestPositions []Allocation       `json:"largest_positions"`
}

// PortfolioContext bridges a single ticker to the portfolio it may join.
// Computed just-in-time from the current portfolio and prices.
type PortfolioContext struct {
	Ticker           string           `json:"ticker"`
	Holding          *Holding         `json:"holding,omitempty"` // nil when the ticker is not held
	Metrics          PortfolioMetrics `json:"metrics"`
	SuggestedAction  Action           `json:"suggested_action"`
	Reasoning        []string         `json:"reasoning"`
	CurrentWeightPct float64          `json:"current_weight_pct"`
}
