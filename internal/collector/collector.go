package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"GemSentinel/internal/model"
)

// MockFetcher returns fixed records for development and testing.
type MockFetcher struct {
	Records []model.MarketRecord
	Err     error
	Calls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMarkets(_ context.Context) ([]model.MarketRecord, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

// Collector acquires one snapshot of market records per call.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches the current record list and tags it with a scan ID.
func (c *Collector) Collect(ctx context.Context) (*model.Snapshot, error) {
	records, err := c.Fetcher.FetchMarkets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch markets from %s: %w", c.Fetcher.Name(), err)
	}

	unusable := 0
	for _, r := range records {
		if !(r.MarketCap > 0) {
			unusable++
		}
	}
	if unusable > 0 {
		log.Printf("[WARN] %d of %d records have no usable market cap", unusable, len(records))
	}
	log.Printf("[INFO] fetched %d records from %s", len(records), c.Fetcher.Name())

	return &model.Snapshot{
		ID:        uuid.NewString(),
		Source:    c.Fetcher.Name(),
		FetchedAt: time.Now(),
		Records:   records,
	}, nil
}
