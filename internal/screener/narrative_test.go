package screener

import (
	"math"
	"strings"
	"testing"

	"GemSentinel/internal/model"
)

func TestNarrate_AllClauses(t *testing.T) {
	got := Narrate(scenarioA())
	want := "Alpha shows promise with a market cap of only $5.00M. " +
		"It has strong trading volume at 60.0% of its market cap. " +
		"Price is up 20.0% in the last 24h. " +
		"Only 20.0% of total supply is in circulation."
	if got != want {
		t.Errorf("unexpected narrative:\n got %q\nwant %q", got, want)
	}
}

func TestNarrate_OnlyFirstClause(t *testing.T) {
	r := model.MarketRecord{Name: "Beta", MarketCap: 42_345_678, TotalVolume: 5_000_000, PriceChangePercent24h: -3}
	got := Narrate(r)
	want := "Beta shows promise with a market cap of only $42.35M."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNarrate_ClauseGuards(t *testing.T) {
	const (
		volume = "It has strong trading volume"
		price  = "Price is up"
		supply = "of total supply is in circulation"
	)
	for _, r := range randomRecords(5, 300) {
		got := Narrate(r)
		if !strings.HasPrefix(got, r.Name+" shows promise with a market cap of only $") {
			t.Fatalf("%s: missing first clause: %q", r.ID, got)
		}
		hasRatio := r.MarketCap > 0 && r.TotalVolume/r.MarketCap > 0.3
		if strings.Contains(got, volume) != hasRatio {
			t.Errorf("%s: volume clause presence mismatch: %q", r.ID, got)
		}
		if strings.Contains(got, price) != (r.PriceChangePercent24h > 0) {
			t.Errorf("%s: price clause presence mismatch: %q", r.ID, got)
		}
		hasSupply := r.HasSupply() && *r.TotalSupply > 0
		if strings.Contains(got, supply) != hasSupply {
			t.Errorf("%s: supply clause presence mismatch: %q", r.ID, got)
		}
		if Narrate(r) != got {
			t.Errorf("%s: narrative not deterministic", r.ID)
		}
	}
}

func TestNarrate_NonFiniteDoesNotPanic(t *testing.T) {
	got := Narrate(model.MarketRecord{Name: "Inf", MarketCap: math.Inf(1)})
	if !strings.Contains(got, "+Inf") {
		t.Errorf("expected +Inf in narrative, got %q", got)
	}
}
