package model

import "time"

// PotentialScore is the heuristic score of one record. Factors hold one
// explanation per triggered rule, in evaluation order.
type PotentialScore struct {
	Value   int      `json:"value"`
	Factors []string `json:"factors"`
}

// Gem is a ranked record ready for list display.
type Gem struct {
	Record    MarketRecord   `json:"record"`
	Score     PotentialScore `json:"score"`
	Narrative string         `json:"narrative"`
}

// ChartPoint is the bar-chart projection of a gem.
type ChartPoint struct {
	Label     string  `json:"label"`
	Score     int     `json:"score"`
	MarketCap float64 `json:"market_cap"`
}

// ScanResult is the output of one pipeline run.
type ScanResult struct {
	ID        string       `json:"id,omitempty"`
	Source    string       `json:"source,omitempty"`
	FetchedAt time.Time    `json:"fetched_at"`
	Total     int          `json:"total"`
	Eligible  int          `json:"eligible"`
	SortField Field        `json:"sort_field"`
	Direction Direction    `json:"direction"`
	Gems      []Gem        `json:"gems"`
	Chart     []ChartPoint `json:"chart"`
}
