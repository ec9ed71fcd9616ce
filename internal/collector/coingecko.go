package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"GemSentinel/internal/model"
)

const DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

// errRetryable marks responses worth another attempt (429 and 5xx).
var errRetryable = errors.New("retryable status")

// CoinGeckoFetcher implements Fetcher using the CoinGecko /coins/markets endpoint.
type CoinGeckoFetcher struct {
	BaseURL    string
	APIKey     string
	VsCurrency string
	PerPage    int
	MaxRetries int
	RetryDelay time.Duration
	Client     *http.Client
}

// NewCoinGeckoFetcher creates a new fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, apiKey, vsCurrency string, perPage int, proxyURL string) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}
	return &CoinGeckoFetcher{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		VsCurrency: vsCurrency,
		PerPage:    perPage,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

func (f *CoinGeckoFetcher) marketsURL() string {
	q := url.Values{}
	q.Set("vs_currency", f.VsCurrency)
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(f.PerPage))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	return f.BaseURL + "/coins/markets?" + q.Encode()
}

// FetchMarkets retrieves one page of market records, retrying rate limits and server errors.
func (f *CoinGeckoFetcher) FetchMarkets(ctx context.Context) ([]model.MarketRecord, error) {
	var lastErr error
	for i := 0; i <= f.MaxRetries; i++ {
		if i > 0 {
			backoff := f.RetryDelay * time.Duration(1<<uint(i-1))
			log.Printf("[WARN] coingecko fetch failed (attempt %d/%d): %v, retrying in %v", i, f.MaxRetries+1, lastErr, backoff)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		records, err := f.fetchOnce(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var netErr interface{ Timeout() bool }
		if !errors.Is(err, errRetryable) && !errors.As(err, &netErr) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("all %d attempts exhausted: %w", f.MaxRetries+1, lastErr)
}

func (f *CoinGeckoFetcher) fetchOnce(ctx context.Context) ([]model.MarketRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.marketsURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, fmt.Errorf("coingecko: status %d: %w", resp.StatusCode, errRetryable)
		}
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}
	return decodeMarkets(resp.Body)
}
