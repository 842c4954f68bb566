// Package weatherbit fetches historical daily weather from the Weatherbit
// history API.
package weatherbit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production history endpoint.
const DefaultBaseURL = "https://api.weatherbit.io/v2.0/history/daily"

// Observation is one day of provider history.
type Observation struct {
	MaxDNI    float64 `json:"max_dni"`
	Date      string  `json:"datetime"`
	MaxTempTS int64   `json:"max_temp_ts"`
	SolarRad  float64 `json:"solar_rad"`
}

// FetchError tags a failed provider call with the location it was for.
type FetchError struct {
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("retrieving weather data for %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client calls the Weatherbit history API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Weatherbit client. A zero timeout disables the request
// deadline.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type historyResponse struct {
	Data []Observation `json:"data"`
}

// History fetches the daily records for one coordinate pair over
// [startDate, endDate]. Transport and provider errors come back as a
// FetchError tagged with location; no retry is attempted.
func (c *Client) History(ctx context.Context, location string, lat, lon float64, startDate, endDate string) ([]Observation, error) {
	params := url.Values{
		"lat":        {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":        {strconv.FormatFloat(lon, 'f', -1, 64)},
		"start_date": {startDate},
		"end_date":   {endDate},
		"key":        {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)

	if err != nil {
		return nil, &FetchError{Location: location, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return nil, &FetchError{Location: location, Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{
			Location: location,
			Err:      fmt.Errorf("weatherbit API error: status %d: %s", resp.StatusCode, body),
		}
	}

	var history historyResponse

	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, &FetchError{Location: location, Err: fmt.Errorf("decode response: %w", err)}
	}

	return history.Data, nil
}
