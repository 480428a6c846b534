package riot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/metrics"
)

// maxErrorBody bounds how much of an error response is kept
const maxErrorBody = 4 << 10

// Config configures a Client
type Config struct {
	APIKey string
	// BaseURLTemplate receives the routing zone through %s
	BaseURLTemplate string
	RequestDelay    time.Duration
	Timeout         time.Duration
}

// Client talks to the Riot account-v1 and match-v5 APIs
type Client struct {
	apiKey      string
	urlTemplate string
	http        *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new Client. Zero config fields take their defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURLTemplate == "" {
		cfg.BaseURLTemplate = DefaultBaseURLTemplate
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = DefaultRequestDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		apiKey:      cfg.APIKey,
		urlTemplate: cfg.BaseURLTemplate,
		http:        &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
	}
}

// Configured reports whether an API key is set
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GetAccountByRiotID resolves a player's handle to their PUUID
func (c *Client) GetAccountByRiotID(ctx context.Context, zone, name, tag string) (*Account, error) {
	path := fmt.Sprintf(pathAccountByRiotID, url.PathEscape(name), url.PathEscape(tag))
	var account Account
	if err := c.get(ctx, zone, EndpointAccount, path, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetMatchIDs lists the most recent match ids for a player
func (c *Client) GetMatchIDs(ctx context.Context, zone, puuid string, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}
	if count > MaxMatchCount {
		count = MaxMatchCount
	}
	path := fmt.Sprintf(pathMatchIDsByPUUID, url.PathEscape(puuid), count)
	var ids []string
	if err := c.get(ctx, zone, EndpointMatchIDs, path, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetMatch fetches one match detail. Calls are spaced by the client's limiter.
func (c *Client) GetMatch(ctx context.Context, zone, matchID string) (*Match, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRateLimitWait, err)
	}
	path := fmt.Sprintf(pathMatchByID, url.PathEscape(matchID))
	var match Match
	if err := c.get(ctx, zone, EndpointMatch, path, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (c *Client) get(ctx context.Context, zone, endpoint, path string, out interface{}) error {
	log := logger.FromContext(ctx)
	target := fmt.Sprintf(c.urlTemplate, zone) + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	req.Header.Set(HeaderRiotToken, c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RiotRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RiotRequestsTotal.WithLabelValues(endpoint, StatusLabelFailed).Inc()
		log.Warn("Riot request failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	metrics.RiotRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body),
			Body:       string(body),
		}
		log.Warn("Riot API error", "endpoint", endpoint, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	log.Debug("Riot request completed", "endpoint", endpoint, "duration", time.Since(start))
	return nil
}

// upstreamMessage extracts status.message from a Riot error document
func upstreamMessage(body []byte) string {
	var doc struct {
		Status struct {
			Message string `json:"message"`
		} `json:"status"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	return doc.Status.Message
}
