package screener

import (
	"strings"

	"GemSentinel/internal/model"
)

// DefaultLimit is the number of gems kept after ranking.
const DefaultLimit = 10

// Options controls one pipeline run. Zero fields fall back to the defaults.
type Options struct {
	Criteria  Criteria
	Field     model.Field
	Direction model.Direction
	Limit     int
}

// DefaultOptions ranks by potential score, highest first, keeping the top 10.
func DefaultOptions() Options {
	return Options{
		Criteria:  DefaultCriteria(),
		Field:     model.FieldPotentialScore,
		Direction: model.Desc,
		Limit:     DefaultLimit,
	}
}

func (o Options) normalized() Options {
	if o.Criteria == (Criteria{}) {
		o.Criteria = DefaultCriteria()
	}
	if o.Field == "" {
		o.Field = model.FieldPotentialScore
	}
	if o.Direction == "" {
		o.Direction = model.Desc
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// Run filters, ranks and truncates records, then scores and narrates each gem.
// Acquisition metadata (ID, Source, FetchedAt) is left to the caller.
func Run(records []model.MarketRecord, opts Options) *model.ScanResult {
	opts = opts.normalized()

	eligible := FilterWith(records, opts.Criteria)
	top := TopN(Rank(eligible, opts.Field, opts.Direction), opts.Limit)

	gems := make([]model.Gem, len(top))
	for i, r := range top {
		gems[i] = model.Gem{
			Record:    r,
			Score:     Score(r),
			Narrative: Narrate(r),
		}
	}

	return &model.ScanResult{
		Total:     len(records),
		Eligible:  len(eligible),
		SortField: opts.Field,
		Direction: opts.Direction,
		Gems:      gems,
		Chart:     ChartData(gems),
	}
}

// ChartData projects gems onto bar-chart points, keeping their order.
func ChartData(gems []model.Gem) []model.ChartPoint {
	points := make([]model.ChartPoint, len(gems))
	for i, g := range gems {
		points[i] = model.ChartPoint{
			Label:     strings.ToUpper(g.Record.Symbol),
			Score:     g.Score.Value,
			MarketCap: g.Record.MarketCap,
		}
	}
	return points
}
