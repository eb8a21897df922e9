package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/nfielder/habitd/internal/constants"
	"github.com/nfielder/habitd/internal/models"
)

// Client fetches the quote of the day. One attempt per call, no retries;
// the digest cycle retries naturally the next day.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client against the default quote API, honoring the
// HABITD_QUOTE_URL environment override.
func New() *Client {
	url := os.Getenv(constants.QuoteURLEnvVar)
	if url == "" {
		url = constants.DefaultQuoteURL
	}
	return NewWithURL(url)
}

func NewWithURL(url string) *Client {
	return &Client{
		baseURL: url,
		http:    &http.Client{Timeout: constants.QuoteTimeout},
	}
}

// quoteEntry matches the wire shape of the quote API: a one-element array
// of {"q": text, "a": author}.
type quoteEntry struct {
	Text   string `json:"q"`
	Author string `json:"a"`
}

// FetchTodayQuote performs a single remote read for today's quote.
func (c *Client) FetchTodayQuote(ctx context.Context) (models.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return models.Quote{}, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return models.Quote{}, fmt.Errorf("quote fetch failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return models.Quote{}, fmt.Errorf("quote fetch failed with status %d", res.StatusCode)
	}

	var entries []quoteEntry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return models.Quote{}, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if len(entries) == 0 {
		return models.Quote{}, fmt.Errorf("quote response was empty")
	}

	return models.Quote{Text: entries[0].Text, Author: entries[0].Author}, nil
}
