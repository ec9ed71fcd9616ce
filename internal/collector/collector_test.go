package collector

import (
	"context"
	"errors"
	"testing"

	"GemSentinel/internal/model"
)

func TestCollector_Collect(t *testing.T) {
	mock := &MockFetcher{Records: []model.MarketRecord{{ID: "a", MarketCap: 1}, {ID: "b"}}}
	snap, err := NewCollector(mock).Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if snap.ID == "" {
		t.Error("expected a scan id")
	}
	if snap.Source != "mock" || len(snap.Records) != 2 || snap.FetchedAt.IsZero() {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	again, _ := NewCollector(mock).Collect(context.Background())
	if again.ID == snap.ID {
		t.Error("expected distinct scan ids")
	}
}

func TestCollector_WrapsFetchError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewCollector(&MockFetcher{Err: boom}).Collect(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}
