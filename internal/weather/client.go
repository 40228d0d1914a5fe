// Package weather looks up the current conditions for a city.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/balkashynov/myday/internal/models"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	iconURLFormat  = "https://openweathermap.org/img/w/%s.png"
)

// ErrExternalService marks any failure talking to the weather API
var ErrExternalService = errors.New("weather service unavailable")

// Fetcher returns the current weather for a city
type Fetcher interface {
	Fetch(ctx context.Context, city string) (models.WeatherInfo, error)
}

// Client calls the OpenWeatherMap current weather endpoint
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL points the client at another server
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client using apiKey
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiResponse is the subset of the API body we read
type apiResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

// Fetch performs one GET for city
func (c *Client) Fetch(ctx context.Context, city string) (models.WeatherInfo, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.WeatherInfo{}, fmt.Errorf("city is required: %w", models.ErrValidation)
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	endpoint := c.baseURL + "/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.WeatherInfo{}, fmt.Errorf("%w: build request: %v", ErrExternalService, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.WeatherInfo{}, fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.WeatherInfo{}, fmt.Errorf("%w: status %d: %s",
			ErrExternalService, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.WeatherInfo{}, fmt.Errorf("%w: decode response: %v", ErrExternalService, err)
	}
	if len(body.Weather) == 0 {
		return models.WeatherInfo{}, fmt.Errorf("%w: response has no conditions", ErrExternalService)
	}

	return models.WeatherInfo{
		TemperatureCelsius: body.Main.Temp,
		Condition:          body.Weather[0].Main,
		IconURL:            fmt.Sprintf(iconURLFormat, body.Weather[0].Icon),
	}, nil
}
