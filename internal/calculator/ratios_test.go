package calculator

import (
	"errors"
	"testing"

	"GemSentinel/internal/model"
)

func f(v float64) *float64 { return &v }

func TestMarketCapMillions(t *testing.T) {
	if got := MarketCapMillions(model.MarketRecord{MarketCap: 42_500_000}); got != 42.5 {
		t.Errorf("expected 42.5, got %v", got)
	}
}

func TestVolumeToCapRatio(t *testing.T) {
	got, err := VolumeToCapRatio(model.MarketRecord{MarketCap: 5_000_000, TotalVolume: 3_000_000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.6 {
		t.Errorf("expected 0.6, got %v", got)
	}

	for _, cap := range []float64{0, -1} {
		if _, err := VolumeToCapRatio(model.MarketRecord{MarketCap: cap, TotalVolume: 10}); !errors.Is(err, ErrNoMarketCap) {
			t.Errorf("cap %v: expected ErrNoMarketCap, got %v", cap, err)
		}
	}
}

func TestSupplyRatio(t *testing.T) {
	tests := []struct {
		name    string
		rec     model.MarketRecord
		want    float64
		wantErr bool
	}{
		{"both present", model.MarketRecord{TotalSupply: f(100), CirculatingSupply: f(20)}, 0.2, false},
		{"total missing", model.MarketRecord{CirculatingSupply: f(20)}, 0, true},
		{"circulating missing", model.MarketRecord{TotalSupply: f(100)}, 0, true},
		{"zero total", model.MarketRecord{TotalSupply: f(0), CirculatingSupply: f(0)}, 0, true},
	}
	for _, tt := range tests {
		got, err := SupplyRatio(tt.rec)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
