package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cfb-matchups-service/internal/domain/matchups"
	"cfb-matchups-service/internal/providers"
)

// Config controls how the client reaches the published sheet.
type Config struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	// HTTPClient is used as is when it sets its own Timeout; otherwise Timeout applies.
	HTTPClient *http.Client
}

// Client downloads the published CSV and maps it to a matchup dataset.
type Client struct {
	url        string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a sheets client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        resolveURL(cfg.URL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchMatchups performs one GET of the sheet. Non-2xx responses, transport
// errors and malformed CSV all surface as errors.
func (c *Client) FetchMatchups(ctx context.Context) (matchups.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	records, err := readRecords(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sheets: parse csv: %w", err)
	}

	ds, err := matchups.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("sheets: %w", err)
	}
	return ds, nil
}

func readRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	// Sheets exports pad or trim trailing empty cells inconsistently.
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
