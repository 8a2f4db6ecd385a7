package localinfo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"ulascansenturk/localinfo-service/internal/clock"
	"ulascansenturk/localinfo-service/internal/display"
	"ulascansenturk/localinfo-service/internal/route"
	"ulascansenturk/localinfo-service/internal/service"
)

// Options selects what a view shows. PostalCode and UTCOffsetHours override the
// values found in Path; whatever is missing is taken from Path.
type Options struct {
	PostalCode     string
	UTCOffsetHours *int
	ContainerID    string
	Path           string
}

type Service struct {
	pipeline service.WeatherPipeline
	clock    clockwork.Clock
}

func NewService(pipeline service.WeatherPipeline, clk clockwork.Clock) *Service {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	return &Service{
		pipeline: pipeline,
		clock:    clk,
	}
}

// View is one display session: a surface, the clock drawing into it and a
// single weather pipeline run. Owners must call Close.
type View struct {
	Surface *display.Surface
	Query   route.LocationQuery
	Matched bool

	ticker *clock.Ticker
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	state     service.State
	outcome   service.Outcome
	closeOnce sync.Once
}

// Open starts a view. When no location can be resolved the view shows the
// route error and starts neither the clock nor the pipeline.
func (s *Service) Open(ctx context.Context, opts Options, onChange display.ChangeFunc) *View {
	containerID := opts.ContainerID
	if containerID == "" {
		containerID = uuid.NewString()
	}

	v := &View{
		Surface: display.NewSurface(containerID, service.LoadingMessage, onChange),
		done:    make(chan struct{}),
		state:   service.StateIdle,
	}

	query, ok := resolveQuery(opts)
	if !ok {
		log.Warn().Str("path", opts.Path).Str("container", containerID).Msg("no location in route")
		v.finish(service.RouteNotMatched())
		close(v.done)
		return v
	}

	v.Query = query
	v.Matched = true
	v.ticker = clock.Start(s.clock, query.UTCOffsetHours, v.Surface.SetTime)

	runCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel

	go func() {
		defer close(v.done)
		v.finish(s.pipeline.Run(runCtx, query, v.setState))
	}()

	return v
}

func resolveQuery(opts Options) (route.LocationQuery, bool) {
	if opts.PostalCode != "" && opts.UTCOffsetHours != nil {
		return route.LocationQuery{PostalCode: opts.PostalCode, UTCOffsetHours: *opts.UTCOffsetHours}, true
	}

	query, ok := route.ParseLocationAndOffset(opts.Path)
	if !ok {
		return route.LocationQuery{}, false
	}

	if opts.PostalCode != "" {
		query.PostalCode = opts.PostalCode
	}
	if opts.UTCOffsetHours != nil {
		query.UTCOffsetHours = *opts.UTCOffsetHours
	}

	return query, true
}

func (v *View) setState(state service.State) {
	v.mu.Lock()
	v.state = state
	v.mu.Unlock()
}

func (v *View) finish(outcome service.Outcome) {
	v.mu.Lock()
	v.state = outcome.State
	v.outcome = outcome
	v.mu.Unlock()

	v.Surface.SetConditions(outcome.Message())
	v.Surface.SetIcon("")
}

// State is the pipeline state the view is currently in.
func (v *View) State() service.State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

// Done is closed once the view has reached a terminal outcome.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Wait blocks until the pipeline reaches a terminal state or ctx ends. On ctx
// expiry the returned outcome carries the in-progress state.
func (v *View) Wait(ctx context.Context) (service.Outcome, error) {
	select {
	case <-v.done:
		v.mu.Lock()
		defer v.mu.Unlock()
		return v.outcome, nil
	case <-ctx.Done():
		return service.Outcome{State: v.State()}, ctx.Err()
	}
}

// Close stops the clock and abandons an unfinished pipeline. Safe to call more
// than once.
func (v *View) Close() {
	v.closeOnce.Do(func() {
		if v.ticker != nil {
			v.ticker.Stop()
		}
		if v.cancel != nil {
			v.cancel()
		}
	})
}
