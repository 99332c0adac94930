package bitpin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"marketview/config"
	"marketview/logger"
	"marketview/models"
)

// Client fetches market list, order book and trade tape snapshots from the
// Bitpin public REST API. Every query is a read-only, point-in-time read;
// the returned lists replace prior state wholesale and are never mutated.
type Client struct {
	config  *config.Config
	client  *http.Client
	limiter *rate.Limiter
	log     *logger.Log
}

// NewClient creates a Client with a pooled transport sized from the reader
// configuration and an optional shared rate limiter across all queries.
func NewClient(cfg *config.Config) *Client {
	log := logger.GetLogger()

	transport := &http.Transport{
		MaxIdleConns:        cfg.Reader.ConnectionPool.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Reader.ConnectionPool.MaxIdleConns,
		MaxConnsPerHost:     cfg.Reader.ConnectionPool.MaxConnsPerHost,
		IdleConnTimeout:     cfg.Reader.ConnectionPool.IdleConnTimeout,
		DisableCompression:  false,
	}

	var rt http.RoundTripper = transport
	if cfg.Reader.UserAgent != "" {
		rt = userAgentTransport{agent: cfg.Reader.UserAgent, base: transport}
	}

	var limiter *rate.Limiter
	if cfg.Reader.RateLimit.RequestsPerSecond > 0 {
		burst := cfg.Reader.RateLimit.BurstSize
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.Reader.RateLimit.RequestsPerSecond), burst)
	}

	reader := &Client{
		config: cfg,
		client: &http.Client{
			Transport: rt,
			Timeout:   cfg.Reader.Timeout,
		},
		limiter: limiter,
		log:     log,
	}

	log.WithComponent("bitpin_reader").WithFields(logger.Fields{
		"max_idle_conns":     cfg.Reader.ConnectionPool.MaxIdleConns,
		"max_conns_per_host": cfg.Reader.ConnectionPool.MaxConnsPerHost,
		"timeout":            cfg.Reader.Timeout,
	}).Info("bitpin reader initialized")

	return reader
}

// Markets fetches the full market list snapshot.
func (c *Client) Markets(ctx context.Context) (models.MarketPage, error) {
	log := c.log.WithComponent("bitpin_reader").WithFields(logger.Fields{
		"operation": "fetch_markets",
	})

	body, err := c.get(ctx, c.config.Source.Bitpin.Markets.URL, "fetch_markets")
	if err != nil {
		return models.MarketPage{}, err
	}

	var page models.MarketPage
	if err := json.Unmarshal(body, &page); err != nil {
		return models.MarketPage{}, fmt.Errorf("failed to decode market list: %w", err)
	}

	logger.IncrementMarketRead(len(body))
	logger.LogDataFlowEntry(log, "bitpin_api", "listing_view", len(page.Results), "market_summaries")
	return page, nil
}

// OrderBook fetches one side of a market's order book, capped to the
// configured row limit. The cap is a source-feed contract; downstream
// consumers handle any list length.
func (c *Client) OrderBook(ctx context.Context, marketID int, side models.OrderSide) ([]models.OrderRecord, error) {
	url := fmt.Sprintf("%s/%d/?type=%s", strings.TrimRight(c.config.Source.Bitpin.Book.URL, "/"), marketID, side)

	body, err := c.get(ctx, url, "fetch_orderbook")
	if err != nil {
		return nil, err
	}

	var resp models.BookResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode orderbook: %w", err)
	}

	logger.IncrementBookRead(len(body))
	return capRows(resp.Orders, c.config.Source.Bitpin.Book.Limit), nil
}

// Matches fetches the trade tape for a market, capped to the configured row
// limit. The endpoint returns a bare array rather than an envelope.
func (c *Client) Matches(ctx context.Context, marketID int) ([]models.OrderRecord, error) {
	url := fmt.Sprintf("%s/%d/", strings.TrimRight(c.config.Source.Bitpin.Matches.URL, "/"), marketID)

	body, err := c.get(ctx, url, "fetch_matches")
	if err != nil {
		return nil, err
	}

	var matches []models.OrderRecord
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("failed to decode trade tape: %w", err)
	}

	logger.IncrementTradeRead(len(body))
	return capRows(matches, c.config.Source.Bitpin.Matches.Limit), nil
}

// FetchFeed issues the query for one feed variant. This is the single
// operation the poll scheduler consumes.
func (c *Client) FetchFeed(ctx context.Context, marketID int, feed models.FeedKind) ([]models.OrderRecord, error) {
	if side, ok := feed.Side(); ok {
		return c.OrderBook(ctx, marketID, side)
	}
	return c.Matches(ctx, marketID)
}

func (c *Client) get(ctx context.Context, url, operation string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.LogPerformanceEntry(c.log.WithComponent("bitpin_reader"), "bitpin_reader", operation, time.Since(start), logger.Fields{
		"url": url,
	})

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func capRows(orders []models.OrderRecord, limit int) []models.OrderRecord {
	if limit > 0 && len(orders) > limit {
		return orders[:limit]
	}
	return orders
}
