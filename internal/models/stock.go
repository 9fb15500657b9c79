// Package models defines data structures for Compass
package models

// Consensus is the aggregated analyst rating for a stock
type Consensus string

const (
	ConsensusStrongBuy  Consensus = "strong_buy"
	ConsensusBuy        Consensus = "buy"
	ConsensusHold       Consensus = "hold"
	ConsensusSell       Consensus = "sell"
	ConsensusStrongSell Consensus = "strong_sell"
)

// StockData is a normalized market snapshot for a single ticker, supplied
// by the market-data collaborator. The engines treat it as immutable and
// already shape-validated; missing sections are nil.
type StockData struct {
	Ticker       string        `json:"ticker"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Fundamentals *Fundamentals `json:"fundamentals,omitempty"`
	Technicals   *Technicals   `json:"technicals,omitempty"`
	Sentiment    *Sentiment    `json:"sentiment,omitempty"`
}

// Fundamentals contains ratio and growth figures for a stock
type Fundamentals struct {
	TrailingPE       float64 `json:"trailing_pe"`
	ForwardPE        float64 `json:"forward_pe"`
	DividendYieldPct float64 `json:"dividend_yield_pct"`
	RevenueGrowthPct float64 `json:"revenue_growth_pct"`
	EPSGrowthPct     float64 `json:"eps_growth_pct"`
	NetMarginPct     float64 `json:"net_margin_pct"`
	FCFYieldPct      float64 `json:"fcf_yield_pct"`
	DebtToEquity     float64 `json:"debt_to_equity"`
	ROEPct           float64 `json:"roe_pct"`
}

// Technicals contains price action and indicator values for a stock
type Technicals struct {
	Price      float64 `json:"price"`
	High52Week float64 `json:"high_52_week"`
	Low52Week  float64 `json:"low_52_week"`
	SMA50      float64 `json:"sma_50"`
	SMA200     float64 `json:"sma_200"`
	RSI14      float64 `json:"rsi_14"`
	Volume     int64   `json:"volume"`
	AvgVolume  int64   `json:"avg_volume"`
}

// Sentiment contains analyst consensus, price targets, and news themes
type Sentiment struct {
	Consensus  Consensus `json:"consensus"`
	TargetMean float64   `json:"target_mean"`
	TargetHigh float64   `json:"target_high"`
	TargetLow  float64   `json:"target_low"`
	NewsThemes []string  `json:"news_themes,omitempty"`
}
