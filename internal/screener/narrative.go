package screener

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"GemSentinel/internal/calculator"
	"GemSentinel/internal/model"
)

// Narrate summarizes the notable attributes of r in one paragraph.
func Narrate(r model.MarketRecord) string {
	parts := []string{
		fmt.Sprintf("%s shows promise with a market cap of only $%sM.", r.Name, fixed(calculator.MarketCapMillions(r), 2)),
	}
	if ratio, err := calculator.VolumeToCapRatio(r); err == nil && ratio > 0.3 {
		parts = append(parts, fmt.Sprintf("It has strong trading volume at %s%% of its market cap.", fixed(ratio*100, 1)))
	}
	if r.PriceChangePercent24h > 0 {
		parts = append(parts, fmt.Sprintf("Price is up %s%% in the last 24h.", fixed(r.PriceChangePercent24h, 1)))
	}
	if sr, err := calculator.SupplyRatio(r); err == nil {
		parts = append(parts, fmt.Sprintf("Only %s%% of total supply is in circulation.", fixed(sr*100, 1)))
	}
	return strings.Join(parts, " ")
}

// fixed formats v with a fixed number of decimals, without locale grouping.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
