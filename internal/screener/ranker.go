package screener

import (
	"math"
	"sort"

	"GemSentinel/internal/model"
)

type keyed struct {
	rec model.MarketRecord
	key float64
}

// Rank returns a stably sorted copy of records. Scores are computed once per
// call when sorting by potentialScore. NaN keys sort last in either direction.
func Rank(records []model.MarketRecord, field model.Field, dir model.Direction) []model.MarketRecord {
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{rec: r, key: sortKey(r, field)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].key, items[j].key
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		case dir == model.Asc:
			return a < b
		default:
			return a > b
		}
	})

	out := make([]model.MarketRecord, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

func sortKey(r model.MarketRecord, field model.Field) float64 {
	if field == model.FieldPotentialScore {
		return float64(Score(r).Value)
	}
	return r.Value(field)
}

// TopN returns the first n items. n <= 0 yields an empty slice.
func TopN[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
