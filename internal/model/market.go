package model

import "time"

// MarketRecord is one market-data entry as supplied by a data source.
type MarketRecord struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Symbol                string   `json:"symbol"`
	ImageURL              string   `json:"image_url,omitempty"`
	CurrentPrice          float64  `json:"current_price"`
	MarketCap             float64  `json:"market_cap"`
	TotalVolume           float64  `json:"total_volume"`
	PriceChangePercent24h float64  `json:"price_change_percent_24h"`
	TotalSupply           *float64 `json:"total_supply,omitempty"`
	CirculatingSupply     *float64 `json:"circulating_supply,omitempty"`
}

// HasSupply reports whether both supply figures are present.
func (r MarketRecord) HasSupply() bool {
	return r.TotalSupply != nil && r.CirculatingSupply != nil
}

// Snapshot is the raw record list from one acquisition.
type Snapshot struct {
	ID        string
	Source    string
	FetchedAt time.Time
	Records   []MarketRecord
}
