// Package clients provides HTTP clients for external data sources
package clients

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

// HTTPClient is a wrapper around http.Client with common configuration
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTP client with timeout
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Get performs a GET request and returns the response body
func (c *HTTPClient) Get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "flight-sun-tracker/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// AirportsClient fetches an airport dataset from a remote URL
type AirportsClient struct {
	http    *HTTPClient
	baseURL string
}

// NewAirportsClient creates a new airports dataset client
func NewAirportsClient(baseURL string) *AirportsClient {
	return &AirportsClient{
		http:    NewHTTPClient(),
		baseURL: baseURL,
	}
}

// BaseURL returns the dataset URL
func (c *AirportsClient) BaseURL() string {
	return c.baseURL
}

// FetchDataset fetches and parses the remote airport dataset. The dataset is
// either a bare JSON array of airport records or an object wrapping one
// under an "airports" key.
func (c *AirportsClient) FetchDataset() ([]domain.Airport, error) {
	body, err := c.http.Get(c.baseURL)
	if err != nil {
		return nil, err
	}

	var list []domain.Airport
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapper struct {
		Airports []domain.Airport `json:"airports"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && len(wrapper.Airports) > 0 {
		return wrapper.Airports, nil
	}

	return nil, fmt.Errorf("unrecognized airport dataset format from %s", c.baseURL)
}
