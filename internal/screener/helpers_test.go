package screener

import (
	"fmt"
	"math/rand"

	"GemSentinel/internal/model"
)

func f(v float64) *float64 { return &v }

func scenarioA() model.MarketRecord {
	return model.MarketRecord{
		ID:                    "alpha",
		Name:                  "Alpha",
		Symbol:                "alp",
		MarketCap:             5_000_000,
		TotalVolume:           3_000_000,
		PriceChangePercent24h: 20,
		TotalSupply:           f(100),
		CirculatingSupply:     f(20),
	}
}

// randomRecords builds a deterministic mix of eligible, ineligible and malformed records.
func randomRecords(seed int64, n int) []model.MarketRecord {
	rng := rand.New(rand.NewSource(seed))
	out := make([]model.MarketRecord, n)
	for i := range out {
		r := model.MarketRecord{
			ID:                    fmt.Sprintf("coin-%d", i),
			Name:                  fmt.Sprintf("Coin %d", i),
			Symbol:                fmt.Sprintf("c%d", i),
			MarketCap:             rng.Float64() * 200_000_000,
			TotalVolume:           rng.Float64() * 150_000_000,
			PriceChangePercent24h: rng.Float64()*60 - 20,
		}
		switch rng.Intn(5) {
		case 0:
			r.MarketCap = 0
		case 1:
			r.MarketCap = rng.Float64() * 20_000_000
		}
		if rng.Intn(2) == 0 {
			total := rng.Float64() * 1e9
			r.TotalSupply = &total
			circ := total * rng.Float64()
			r.CirculatingSupply = &circ
		}
		out[i] = r
	}
	return out
}
