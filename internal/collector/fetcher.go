package collector

import (
	"context"

	"GemSentinel/internal/model"
)

// Fetcher defines the interface for acquiring market records.
type Fetcher interface {
	FetchMarkets(ctx context.Context) ([]model.MarketRecord, error)
	Name() string
}
