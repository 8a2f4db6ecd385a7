package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config holds the provider endpoints and the identifying header sent with every
// request. The hourly forecast URL is discovered at runtime and is not configured.
type Config struct {
	GeocodeBaseURL   string
	GridPointBaseURL string
	ClientIdentifier string
}

var (
	ErrNoMatch                 = errors.New("geocoder returned no results")
	ErrForecastEndpointMissing = errors.New("grid point response has no hourly forecast url")
	ErrNoPeriods               = errors.New("forecast response has no periods")
)

// StatusError reports a provider answering with a non-2xx status.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status code: %d", e.Service, e.StatusCode)
}

// NewHTTPClient builds the client shared by all stages. A zero timeout leaves
// deadlines to the transport and the caller's context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

type apiClient struct {
	service          string
	client           *http.Client
	clientIdentifier string
}

func newAPIClient(service string, client *http.Client, clientIdentifier string) apiClient {
	if client == nil {
		client = NewHTTPClient(0)
	}

	return apiClient{
		service:          service,
		client:           client,
		clientIdentifier: clientIdentifier,
	}
}

func (c apiClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s request could not be built: %w", c.service, err)
	}

	if c.clientIdentifier != "" {
		req.Header.Set("User-Agent", c.clientIdentifier)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", c.service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Service: c.service, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s returned malformed JSON: %w", c.service, err)
	}

	return nil
}
