// Package airquality fetches readings from the WAQI air-quality API.
// It is a read-only integration: nothing in the store or auth layers
// depends on it.
package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ecotech/internal/config"
)

// APIError reports a failure signalled by the air-quality service
// itself, as opposed to a transport or decoding error.
type APIError struct {
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("air quality API error: %s", e.Detail)
}

// Client calls the WAQI feed endpoint.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client from config, falling back to the public
// demo endpoint when fields are unset.
func NewClient(cfg config.AirConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.waqi.info"
	}
	token := cfg.Token
	if token == "" {
		token = "demo"
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// feedResponse is the wire shape of the WAQI feed endpoint. Data is a
// payload object on success but a bare message string on error.
type feedResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type feedData struct {
	AQI  Index `json:"aqi"`
	City struct {
		Name string    `json:"name"`
		Geo  []float64 `json:"geo"`
	} `json:"city"`
	IAQI map[string]struct {
		V float64 `json:"v"`
	} `json:"iaqi"`
	Time struct {
		S string `json:"s"`
	} `json:"time"`
}

// Fetch retrieves and maps the current reading for a city.
func (c *Client) Fetch(ctx context.Context, city string) (*Report, error) {
	u := fmt.Sprintf("%s/feed/%s/?token=%s", c.baseURL, url.PathEscape(city), url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting air quality data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Detail: fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode)}
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decoding air quality response: %w", err)
	}

	if feed.Status != "ok" {
		detail := "unknown"
		var msg string
		if err := json.Unmarshal(feed.Data, &msg); err == nil && msg != "" {
			detail = msg
		}
		return nil, &APIError{Detail: detail}
	}

	var data feedData
	if err := json.Unmarshal(feed.Data, &data); err != nil {
		return nil, fmt.Errorf("decoding air quality payload: %w", err)
	}

	return newReport(&data), nil
}
