package collector

import (
	"context"
	"fmt"
	"os"

	"GemSentinel/internal/model"
)

// FileFetcher reads records from a saved /coins/markets JSON response.
type FileFetcher struct {
	Path string
}

func NewFileFetcher(path string) *FileFetcher { return &FileFetcher{Path: path} }

func (f *FileFetcher) Name() string { return "file:" + f.Path }

func (f *FileFetcher) FetchMarkets(_ context.Context) ([]model.MarketRecord, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open market dump: %w", err)
	}
	defer fh.Close()
	return decodeMarkets(fh)
}
