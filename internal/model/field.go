package model

import (
	"fmt"
	"strings"
)

// Field names a sortable attribute of a record.
type Field string

const (
	FieldPotentialScore        Field = "potentialScore"
	FieldMarketCap             Field = "marketCap"
	FieldTotalVolume           Field = "totalVolume"
	FieldPriceChangePercent24h Field = "priceChangePercent24h"
	FieldTotalSupply           Field = "totalSupply"
	FieldCirculatingSupply     Field = "circulatingSupply"
	FieldCurrentPrice          Field = "currentPrice"
)

// Fields lists every sortable field.
var Fields = []Field{
	FieldPotentialScore,
	FieldMarketCap,
	FieldTotalVolume,
	FieldPriceChangePercent24h,
	FieldTotalSupply,
	FieldCirculatingSupply,
	FieldCurrentPrice,
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseField accepts a field name case-insensitively. Empty input selects potentialScore.
func ParseField(s string) (Field, error) {
	if s == "" {
		return FieldPotentialScore, nil
	}
	for _, f := range Fields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

// ParseDirection accepts "asc" or "desc". Empty input selects desc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", s)
	}
}

// Value returns the numeric value of a record field. Absent supply figures
// read as 0. It panics on FieldPotentialScore, which is derived.
func (r MarketRecord) Value(f Field) float64 {
	switch f {
	case FieldMarketCap:
		return r.MarketCap
	case FieldTotalVolume:
		return r.TotalVolume
	case FieldPriceChangePercent24h:
		return r.PriceChangePercent24h
	case FieldTotalSupply:
		if r.TotalSupply == nil {
			return 0
		}
		return *r.TotalSupply
	case FieldCirculatingSupply:
		if r.CirculatingSupply == nil {
			return 0
		}
		return *r.CirculatingSupply
	case FieldCurrentPrice:
		return r.CurrentPrice
	default:
		panic(fmt.Sprintf("model: field %q has no stored value", f))
	}
}
