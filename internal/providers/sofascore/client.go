package sofascore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/football-fixtures-service/internal/domain/matches"
	"github.com/preston-bernstein/football-fixtures-service/internal/providers"
	"github.com/preston-bernstein/football-fixtures-service/internal/timeutil"
)

// Config controls how the SofaScore client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches scheduled events and event detail from SofaScore and maps them to domain models.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a SofaScore client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  cfg.UserAgent,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchMatches retrieves every football event scheduled on date.
func (c *Client) FetchMatches(ctx context.Context, date string) ([]matches.Match, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%s: invalid date %q: %w", providerName, date, err)
	}

	var payload scheduledEventsResponse
	if err := c.getJSON(ctx, "/sport/football/scheduled-events/"+url.PathEscape(date), &payload); err != nil {
		return nil, err
	}

	out := make([]matches.Match, 0, len(payload.Events))
	for _, e := range payload.Events {
		out = append(out, mapEvent(e))
	}
	return out, nil
}

// FetchEnrichment retrieves the player of the match and highlights for a single event.
func (c *Client) FetchEnrichment(ctx context.Context, matchID string) (matches.Enrichment, error) {
	if strings.TrimSpace(matchID) == "" {
		return matches.Enrichment{}, fmt.Errorf("%s: empty match id", providerName)
	}

	var payload eventDetailResponse
	if err := c.getJSON(ctx, "/event/"+url.PathEscape(matchID), &payload); err != nil {
		return matches.Enrichment{}, err
	}
	return mapEnrichment(payload.Event), nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    providerName + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}
