package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"ulascansenturk/weather-client/internal/forecast"
)

const (
	WeatherPath = "/weather"

	formContentType = "application/x-www-form-urlencoded"

	// UnknownErrorMessage is used when a failed response carries no error text.
	UnknownErrorMessage = "Unknown error occurred"
)

type WeatherBackend interface {
	GetWeatherByCity(ctx context.Context, city string) (*forecast.Response, error)
	GetWeatherByLocation(ctx context.Context, clientIP string) (*forecast.Response, error)
	GetHTTPClient() *http.Client
}

// BackendError is a non-2xx answer from the backend.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return UnknownErrorMessage
	}
	return e.Message
}

type weatherBackend struct {
	baseURL string
	client  *http.Client
}

// NewWeatherBackend returns a client for the backend at baseURL. The client has
// no timeout: a request either resolves or fails.
func NewWeatherBackend(baseURL string) WeatherBackend {
	return &weatherBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (b *weatherBackend) GetWeatherByCity(ctx context.Context, city string) (*forecast.Response, error) {
	body := url.Values{"city": {city}}.Encode()
	return b.postWeather(ctx, body, "")
}

// GetWeatherByLocation sends an empty form so the backend resolves the location
// itself. clientIP, when set, is forwarded for the backend's IP lookup.
func (b *weatherBackend) GetWeatherByLocation(ctx context.Context, clientIP string) (*forecast.Response, error) {
	return b.postWeather(ctx, "", clientIP)
}

func (b *weatherBackend) postWeather(ctx context.Context, body, clientIP string) (*forecast.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+WeatherPath, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("Accept", "application/json")
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp forecast.ErrorResponse
		if err := json.Unmarshal(payload, &errResp); err != nil {
			return nil, fmt.Errorf("backend returned malformed JSON: %w", err)
		}
		return nil, &BackendError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	var weather forecast.Response
	if err := json.Unmarshal(payload, &weather); err != nil {
		return nil, fmt.Errorf("backend returned malformed JSON: %w", err)
	}

	return &weather, nil
}

func (b *weatherBackend) GetHTTPClient() *http.Client {
	return b.client
}
