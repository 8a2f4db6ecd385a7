package service

import (
	"strconv"

	"ulascansenturk/localinfo-service/internal/providers"
)

type State string

const (
	StateIdle               State = "idle"
	StateGeocoding          State = "geocoding"
	StateLocatingForecast   State = "locating_forecast"
	StateFetchingConditions State = "fetching_conditions"
	StateDisplayed          State = "displayed"
	StateNoData             State = "no_data"
	StateFailed             State = "failed"

	// StateAbandoned ends a run whose caller went away mid-stage. No provider
	// failed and nothing is rendered for it.
	StateAbandoned State = "abandoned"
)

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	switch s {
	case StateDisplayed, StateNoData, StateFailed, StateAbandoned:
		return true
	}
	return false
}

// Stage names the step an outcome ended in. Stages share their names with the
// in-progress states.
type Stage string

const (
	StageNone               Stage = ""
	StageGeocoding          Stage = Stage(StateGeocoding)
	StageLocatingForecast   Stage = Stage(StateLocatingForecast)
	StageFetchingConditions Stage = Stage(StateFetchingConditions)
)

type FailureKind string

const (
	KindNone                FailureKind = ""
	KindRouteNotMatched     FailureKind = "route_not_matched"
	KindInvalidPostalCode   FailureKind = "invalid_postal_code"
	KindGeocodingFailed     FailureKind = "geocoding_failed"
	KindGridPointFailed     FailureKind = "grid_point_failed"
	KindNoForecastURL       FailureKind = "no_forecast_url"
	KindForecastFetchFailed FailureKind = "forecast_fetch_failed"
	KindNoForecastData      FailureKind = "no_forecast_data"
)

const LoadingMessage = "Loading…"

var kindMessages = map[FailureKind]string{
	KindRouteNotMatched:     "Invalid location.",
	KindInvalidPostalCode:   "Invalid zip code.",
	KindGeocodingFailed:     "Location lookup failed.",
	KindGridPointFailed:     "Forecast lookup failed.",
	KindNoForecastURL:       "No forecast available.",
	KindForecastFetchFailed: "Forecast failed.",
	KindNoForecastData:      "No forecast data.",
}

// Outcome is the terminal result of one pipeline run. Err holds provider
// diagnostics for operators and must not be shown to users.
type Outcome struct {
	State      State                        `json:"state"`
	Stage      Stage                        `json:"stage,omitempty"`
	Kind       FailureKind                  `json:"kind,omitempty"`
	Conditions *providers.CurrentConditions `json:"conditions,omitempty"`
	Err        error                        `json:"-"`
}

func RouteNotMatched() Outcome {
	return Outcome{State: StateFailed, Kind: KindRouteNotMatched}
}

// Message is the text rendered into the conditions region.
func (o Outcome) Message() string {
	switch o.State {
	case StateDisplayed:
		if o.Conditions == nil {
			return ""
		}
		return FormatConditions(*o.Conditions)
	case StateFailed, StateNoData:
		return kindMessages[o.Kind]
	default:
		return LoadingMessage
	}
}

// FormatConditions renders conditions as e.g. "72°F Sunny".
func FormatConditions(c providers.CurrentConditions) string {
	return strconv.FormatFloat(c.Temperature, 'f', -1, 64) + "°" + c.TemperatureUnit + " " + c.ShortDescription
}
