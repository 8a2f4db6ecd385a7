package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Geocoding is restricted to US postal codes.
const countryScope = "us"

type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Geocoder interface {
	Geocode(ctx context.Context, postalCode string) (Coordinates, error)
}

type geocoder struct {
	api     apiClient
	baseURL string
}

func NewGeocoder(cfg Config, client *http.Client) Geocoder {
	return &geocoder{
		api:     newAPIClient("geocoder", client, cfg.ClientIdentifier),
		baseURL: cfg.GeocodeBaseURL,
	}
}

// degrees accepts a coordinate sent either as a JSON string or a JSON number and
// keeps its textual form untouched.
type degrees string

func (d *degrees) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = degrees(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("coordinate must be a string or a number: %w", err)
	}
	*d = degrees(n.String())
	return nil
}

type geocodeResult struct {
	Lat degrees `json:"lat"`
	Lon degrees `json:"lon"`
}

func (g *geocoder) Geocode(ctx context.Context, postalCode string) (Coordinates, error) {
	u, err := url.Parse(g.baseURL)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocoder base url is invalid: %w", err)
	}

	q := u.Query()
	q.Set("q", postalCode)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", countryScope)
	u.RawQuery = q.Encode()

	var results []geocodeResult
	if err := g.api.getJSON(ctx, u.String(), &results); err != nil {
		return Coordinates{}, err
	}

	if len(results) == 0 {
		return Coordinates{}, ErrNoMatch
	}

	first := results[0]
	if first.Lat == "" || first.Lon == "" {
		return Coordinates{}, fmt.Errorf("geocoder returned a result without coordinates")
	}

	return Coordinates{
		Latitude:  string(first.Lat),
		Longitude: string(first.Lon),
	}, nil
}
