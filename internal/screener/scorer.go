package screener

import "GemSentinel/internal/model"

// MaxScore is the highest value DefaultRules can award.
const MaxScore = 17

// Score evaluates r against DefaultRules.
func Score(r model.MarketRecord) model.PotentialScore {
	return ScoreWith(r, DefaultRules)
}

// ScoreWith evaluates r against groups. Each group adds at most one tier.
func ScoreWith(r model.MarketRecord, groups []RuleGroup) model.PotentialScore {
	s := model.PotentialScore{Factors: []string{}}
	for _, g := range groups {
		for _, rule := range g.Tiers {
			if rule.Match(r) {
				s.Value += rule.Points
				s.Factors = append(s.Factors, rule.Factor)
				break
			}
		}
	}
	return s
}
