package providers

import (
	"context"
	"net/http"
)

type CurrentConditions struct {
	Temperature      float64 `json:"temperature"`
	TemperatureUnit  string  `json:"temperature_unit"`
	ShortDescription string  `json:"short_description"`
}

type ForecastLocator interface {
	LocateForecast(ctx context.Context, coordinates Coordinates) (string, error)
}

type ConditionsFetcher interface {
	FetchConditions(ctx context.Context, endpoint string) (CurrentConditions, error)
}

type gridPointResponse struct {
	Properties struct {
		ForecastHourly string `json:"forecastHourly"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []forecastPeriod `json:"periods"`
	} `json:"properties"`
}

type forecastPeriod struct {
	Temperature     float64 `json:"temperature"`
	TemperatureUnit string  `json:"temperatureUnit"`
	ShortForecast   string  `json:"shortForecast"`
}

type forecastLocator struct {
	api     apiClient
	baseURL string
}

func NewForecastLocator(cfg Config, client *http.Client) ForecastLocator {
	return &forecastLocator{
		api:     newAPIClient("grid point service", client, cfg.ClientIdentifier),
		baseURL: cfg.GridPointBaseURL,
	}
}

func (l *forecastLocator) LocateForecast(ctx context.Context, coordinates Coordinates) (string, error) {
	url := l.baseURL + coordinates.Latitude + "," + coordinates.Longitude

	var resp gridPointResponse
	if err := l.api.getJSON(ctx, url, &resp); err != nil {
		return "", err
	}

	if resp.Properties.ForecastHourly == "" {
		return "", ErrForecastEndpointMissing
	}

	return resp.Properties.ForecastHourly, nil
}

type conditionsFetcher struct {
	api apiClient
}

func NewConditionsFetcher(cfg Config, client *http.Client) ConditionsFetcher {
	return &conditionsFetcher{
		api: newAPIClient("forecast service", client, cfg.ClientIdentifier),
	}
}

func (f *conditionsFetcher) FetchConditions(ctx context.Context, endpoint string) (CurrentConditions, error) {
	var resp forecastResponse
	if err := f.api.getJSON(ctx, endpoint, &resp); err != nil {
		return CurrentConditions{}, err
	}

	if len(resp.Properties.Periods) == 0 {
		return CurrentConditions{}, ErrNoPeriods
	}

	first := resp.Properties.Periods[0]

	return CurrentConditions{
		Temperature:      first.Temperature,
		TemperatureUnit:  first.TemperatureUnit,
		ShortDescription: first.ShortForecast,
	}, nil
}
