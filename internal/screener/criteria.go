package screener

import (
	"fmt"

	"GemSentinel/internal/calculator"
	"GemSentinel/internal/model"
)

// Criteria holds the hard inclusion thresholds of the candidate filter.
// The momentum and supply checks only apply when their Enforce flag is set.
type Criteria struct {
	MaxMarketCapMillions float64
	MinVolumeRatio       float64

	EnforceMomentum   bool
	MinPriceChange24h float64

	EnforceSupply  bool
	MaxSupplyRatio float64
}

// DefaultCriteria returns the as-implemented filter: market cap under $100M
// and 24h volume above 10% of market cap.
func DefaultCriteria() Criteria {
	return Criteria{
		MaxMarketCapMillions: 100,
		MinVolumeRatio:       0.1,
		MinPriceChange24h:    8,
		MaxSupplyRatio:       0.5,
	}
}

// StrictCriteria additionally enforces the momentum and supply distribution checks.
func StrictCriteria() Criteria {
	c := DefaultCriteria()
	c.EnforceMomentum = true
	c.EnforceSupply = true
	return c
}

// Eligible reports whether r passes every active check. When it does not,
// the reason names the first failing check.
func (c Criteria) Eligible(r model.MarketRecord) (bool, string) {
	if !(r.MarketCap > 0) {
		return false, "market cap not positive"
	}
	if !(calculator.MarketCapMillions(r) < c.MaxMarketCapMillions) {
		return false, fmt.Sprintf("market cap >= $%.0fM", c.MaxMarketCapMillions)
	}
	ratio, err := calculator.VolumeToCapRatio(r)
	if err != nil {
		return false, err.Error()
	}
	if !(ratio > c.MinVolumeRatio) {
		return false, fmt.Sprintf("volume/cap <= %.2f", c.MinVolumeRatio)
	}
	if c.EnforceMomentum && !(r.PriceChangePercent24h > c.MinPriceChange24h) {
		return false, fmt.Sprintf("24h change <= %.1f%%", c.MinPriceChange24h)
	}
	if c.EnforceSupply {
		// records without supply figures cannot be judged and pass
		if sr, err := calculator.SupplyRatio(r); err == nil && !(sr < c.MaxSupplyRatio) {
			return false, fmt.Sprintf("supply ratio >= %.2f", c.MaxSupplyRatio)
		}
	}
	return true, ""
}

// Describe lists the active checks in display form.
func (c Criteria) Describe() []string {
	lines := []string{
		fmt.Sprintf("Market cap below $%sM", fixed(c.MaxMarketCapMillions, 0)),
		fmt.Sprintf("24h volume above %s%% of market cap", fixed(c.MinVolumeRatio*100, 0)),
	}
	if c.EnforceMomentum {
		lines = append(lines, fmt.Sprintf("24h price change above %s%%", fixed(c.MinPriceChange24h, 0)))
	}
	if c.EnforceSupply {
		lines = append(lines, fmt.Sprintf("Circulating supply below %s%% of total supply", fixed(c.MaxSupplyRatio*100, 0)))
	}
	return lines
}

// Filter keeps the records passing DefaultCriteria, in input order.
func Filter(records []model.MarketRecord) []model.MarketRecord {
	return FilterWith(records, DefaultCriteria())
}

// FilterWith keeps the records passing c, in input order.
func FilterWith(records []model.MarketRecord, c Criteria) []model.MarketRecord {
	out := make([]model.MarketRecord, 0, len(records))
	for _, r := range records {
		if ok, _ := c.Eligible(r); ok {
			out = append(out, r)
		}
	}
	return out
}
