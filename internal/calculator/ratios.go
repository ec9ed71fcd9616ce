package calculator

import (
	"errors"
	"math"

	"GemSentinel/internal/model"
)

var (
	ErrNoMarketCap = errors.New("market cap must be positive")
	ErrNoSupply    = errors.New("supply figures unavailable")
)

// MarketCapMillions returns the market cap expressed in millions.
func MarketCapMillions(r model.MarketRecord) float64 {
	return r.MarketCap / 1_000_000
}

// VolumeToCapRatio returns 24h volume divided by market cap.
// Requires a positive, finite market cap.
func VolumeToCapRatio(r model.MarketRecord) (float64, error) {
	if !(r.MarketCap > 0) || math.IsInf(r.MarketCap, 0) {
		return 0, ErrNoMarketCap
	}
	return r.TotalVolume / r.MarketCap, nil
}

// SupplyRatio returns circulating supply divided by total supply.
// Both figures must be present and total supply positive.
func SupplyRatio(r model.MarketRecord) (float64, error) {
	if !r.HasSupply() || !(*r.TotalSupply > 0) {
		return 0, ErrNoSupply
	}
	return *r.CirculatingSupply / *r.TotalSupply, nil
}
