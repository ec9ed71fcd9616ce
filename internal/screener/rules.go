package screener

import (
	"GemSentinel/internal/calculator"
	"GemSentinel/internal/model"
)

// Rule awards Points and records Factor when Match holds.
type Rule struct {
	Points int
	Factor string
	Match  func(model.MarketRecord) bool
}

// RuleGroup contributes at most one tier: the first matching one.
type RuleGroup struct {
	Name  string
	Tiers []Rule
}

// DefaultRules is the potential scoring table, in evaluation order.
var DefaultRules = []RuleGroup{
	{
		Name: "market_cap",
		Tiers: []Rule{
			{4, "Micro market cap with massive growth potential", capBelow(10)},
			{3, "Very low market cap with high growth potential", capBelow(50)},
		},
	},
	{
		Name: "volume_ratio",
		Tiers: []Rule{
			{4, "Exceptional trading volume relative to market cap", ratioAbove(0.5)},
			{3, "Very high trading volume relative to market cap", ratioAbove(0.3)},
		},
	},
	{
		Name: "momentum",
		Tiers: []Rule{
			{4, "Strong positive price momentum (>15%)", changeAbove(15)},
			{2, "Good positive price momentum (>8%)", changeAbove(8)},
		},
	},
	{
		Name: "supply",
		Tiers: []Rule{
			{3, "Very large room for supply growth", supplyBelow(0.3)},
			{2, "Significant room for supply growth", supplyBelow(0.5)},
		},
	},
	{
		Name: "activity",
		Tiers: []Rule{
			{2, "Extremely high trading activity", volumeExceedsCap},
		},
	},
}

func capBelow(millions float64) func(model.MarketRecord) bool {
	return func(r model.MarketRecord) bool {
		return calculator.MarketCapMillions(r) < millions
	}
}

func ratioAbove(x float64) func(model.MarketRecord) bool {
	return func(r model.MarketRecord) bool {
		ratio, err := calculator.VolumeToCapRatio(r)
		return err == nil && ratio > x
	}
}

func changeAbove(pct float64) func(model.MarketRecord) bool {
	return func(r model.MarketRecord) bool {
		return r.PriceChangePercent24h > pct
	}
}

func supplyBelow(x float64) func(model.MarketRecord) bool {
	return func(r model.MarketRecord) bool {
		sr, err := calculator.SupplyRatio(r)
		return err == nil && sr < x
	}
}

func volumeExceedsCap(r model.MarketRecord) bool {
	return r.TotalVolume > r.MarketCap
}
