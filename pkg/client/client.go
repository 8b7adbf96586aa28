package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pricepeek/pricepeek/pkg/domain"
)

// DefaultBaseURL is the public Pokémon TCG catalog API.
const DefaultBaseURL = "https://api.pokemontcg.io"

// searchPageSize caps how many cards a single search returns.
const searchPageSize = 12

// Client is the card catalog API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new catalog client. Card searches need no authentication.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// cardEnvelope is the API's response wrapper. Data may be absent.
type cardEnvelope struct {
	Data []domain.Card `json:"data"`
}

// Search fetches up to 12 cards whose name starts with query, newest
// response wins at the caller. Callers must not pass an empty query; an
// empty search is a UI no-op, not a request.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Card, error) {
	// The API expects q=name:<query>* with the colon and wildcard left
	// bare, and url.Values would escape both (and reorder the params).
	// Build the query string by hand and escape only the user's text.
	path := "/v2/cards?q=name:" + url.QueryEscape(query) + "*&pageSize=" + strconv.Itoa(searchPageSize)

	var env cardEnvelope
	if err := c.get(ctx, path, &env); err != nil {
		return nil, fmt.Errorf("client.Search: %w", err)
	}
	if env.Data == nil {
		return []domain.Card{}, nil
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
