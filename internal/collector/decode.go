package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"GemSentinel/internal/model"
)

// coinGeckoMarket is one entry of the /coins/markets response. Numeric fields
// stay untyped so that nulls and strings do not fail the whole page.
type coinGeckoMarket struct {
	ID                       string      `json:"id"`
	Symbol                   string      `json:"symbol"`
	Name                     string      `json:"name"`
	Image                    string      `json:"image"`
	CurrentPrice             interface{} `json:"current_price"`
	MarketCap                interface{} `json:"market_cap"`
	TotalVolume              interface{} `json:"total_volume"`
	PriceChangePercentage24h interface{} `json:"price_change_percentage_24h"`
	CirculatingSupply        interface{} `json:"circulating_supply"`
	TotalSupply              interface{} `json:"total_supply"`
}

// toFloat converts a decoded JSON value to a finite float64.
func toFloat(v interface{}) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch n := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		f, err = n.Float64()
	case float64:
		f = n
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// number returns v as a float, or 0 when it is missing or not numeric.
func number(v interface{}) float64 {
	f, _ := toFloat(v)
	return f
}

// optionalSupply returns nil unless v is a non-negative number.
func optionalSupply(v interface{}) *float64 {
	f, ok := toFloat(v)
	if !ok || f < 0 {
		return nil
	}
	return &f
}

func (m coinGeckoMarket) record() model.MarketRecord {
	return model.MarketRecord{
		ID:                    m.ID,
		Name:                  m.Name,
		Symbol:                m.Symbol,
		ImageURL:              m.Image,
		CurrentPrice:          number(m.CurrentPrice),
		MarketCap:             number(m.MarketCap),
		TotalVolume:           number(m.TotalVolume),
		PriceChangePercent24h: number(m.PriceChangePercentage24h),
		TotalSupply:           optionalSupply(m.TotalSupply),
		CirculatingSupply:     optionalSupply(m.CirculatingSupply),
	}
}

// decodeMarkets reads a JSON array in the /coins/markets shape.
func decodeMarkets(r io.Reader) ([]model.MarketRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []coinGeckoMarket
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode markets: %w", err)
	}
	records := make([]model.MarketRecord, len(raw))
	for i, m := range raw {
		records[i] = m.record()
	}
	return records, nil
}
