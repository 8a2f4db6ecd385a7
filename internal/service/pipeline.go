package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/localinfo-service/internal/db/lookuplog"
	"ulascansenturk/localinfo-service/internal/providers"
	"ulascansenturk/localinfo-service/internal/route"
)

// TransitionFunc observes every state the pipeline enters, terminal states
// included.
type TransitionFunc func(State)

type WeatherPipeline interface {
	Run(ctx context.Context, query route.LocationQuery, observe TransitionFunc) Outcome
}

type weatherPipeline struct {
	geocoder   providers.Geocoder
	locator    providers.ForecastLocator
	conditions providers.ConditionsFetcher
	lookupRepo lookuplog.Repository
}

// NewWeatherPipeline chains geocoding, grid point resolution and the hourly
// forecast. lookupRepo may be nil.
func NewWeatherPipeline(
	geocoder providers.Geocoder,
	locator providers.ForecastLocator,
	conditions providers.ConditionsFetcher,
	lookupRepo lookuplog.Repository,
) WeatherPipeline {
	return &weatherPipeline{
		geocoder:   geocoder,
		locator:    locator,
		conditions: conditions,
		lookupRepo: lookupRepo,
	}
}

func (p *weatherPipeline) Run(ctx context.Context, query route.LocationQuery, observe TransitionFunc) Outcome {
	if observe == nil {
		observe = func(State) {}
	}

	logger := log.With().
		Str("postal_code", query.PostalCode).
		Int("utc_offset_hours", query.UTCOffsetHours).
		Logger()

	outcome := p.run(ctx, query, observe)

	observe(outcome.State)
	logOutcome(&logger, outcome)
	p.record(ctx, query, outcome)

	return outcome
}

func (p *weatherPipeline) run(ctx context.Context, query route.LocationQuery, observe TransitionFunc) Outcome {
	observe(StateIdle)

	observe(StateGeocoding)
	coordinates, err := p.geocoder.Geocode(ctx, query.PostalCode)
	switch {
	case err == nil:
	case errors.Is(err, providers.ErrNoMatch):
		return failed(StageGeocoding, KindInvalidPostalCode, err)
	case ctx.Err() != nil:
		return abandoned(StageGeocoding, err)
	default:
		return failed(StageGeocoding, KindGeocodingFailed, err)
	}

	if ctx.Err() != nil {
		return abandoned(StageLocatingForecast, ctx.Err())
	}
	observe(StateLocatingForecast)
	endpoint, err := p.locator.LocateForecast(ctx, coordinates)
	switch {
	case err == nil:
	case errors.Is(err, providers.ErrForecastEndpointMissing):
		return noData(StageLocatingForecast, KindNoForecastURL, err)
	case ctx.Err() != nil:
		return abandoned(StageLocatingForecast, err)
	default:
		return failed(StageLocatingForecast, KindGridPointFailed, err)
	}

	if ctx.Err() != nil {
		return abandoned(StageFetchingConditions, ctx.Err())
	}
	observe(StateFetchingConditions)
	conditions, err := p.conditions.FetchConditions(ctx, endpoint)
	switch {
	case err == nil:
	case errors.Is(err, providers.ErrNoPeriods):
		return noData(StageFetchingConditions, KindNoForecastData, err)
	case ctx.Err() != nil:
		return abandoned(StageFetchingConditions, err)
	default:
		return failed(StageFetchingConditions, KindForecastFetchFailed, err)
	}

	return Outcome{
		State:      StateDisplayed,
		Conditions: &conditions,
	}
}

func failed(stage Stage, kind FailureKind, err error) Outcome {
	return Outcome{State: StateFailed, Stage: stage, Kind: kind, Err: err}
}

func noData(stage Stage, kind FailureKind, err error) Outcome {
	return Outcome{State: StateNoData, Stage: stage, Kind: kind, Err: err}
}

func abandoned(stage Stage, err error) Outcome {
	return Outcome{State: StateAbandoned, Stage: stage, Err: err}
}

func logOutcome(logger *zerolog.Logger, outcome Outcome) {
	var event *zerolog.Event
	switch outcome.State {
	case StateFailed:
		event = logger.Error()
	case StateNoData:
		event = logger.Warn()
	case StateAbandoned:
		event = logger.Debug()
	default:
		event = logger.Info()
	}

	var statusErr *providers.StatusError
	if errors.As(outcome.Err, &statusErr) {
		event = event.Int("status_code", statusErr.StatusCode)
	}

	event.
		Err(outcome.Err).
		Str("state", string(outcome.State)).
		Str("stage", string(outcome.Stage)).
		Str("kind", string(outcome.Kind)).
		Msg("weather pipeline finished")
}

func (p *weatherPipeline) record(ctx context.Context, query route.LocationQuery, outcome Outcome) {
	if p.lookupRepo == nil || outcome.State == StateAbandoned {
		return
	}

	lookup := lookuplog.Lookup{
		PostalCode:     query.PostalCode,
		UTCOffsetHours: query.UTCOffsetHours,
		State:          string(outcome.State),
		Stage:          string(outcome.Stage),
		Kind:           string(outcome.Kind),
	}
	if outcome.Conditions != nil {
		temperature := outcome.Conditions.Temperature
		lookup.Temperature = &temperature
		lookup.TemperatureUnit = outcome.Conditions.TemperatureUnit
		lookup.ShortDescription = outcome.Conditions.ShortDescription
	}

	// The view may already be torn down; the record is still wanted.
	if err := p.lookupRepo.LogLookup(context.WithoutCancel(ctx), lookup); err != nil {
		log.Error().Err(err).Str("postal_code", query.PostalCode).Msg("failed to log lookup")
	}
}
