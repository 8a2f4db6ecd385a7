package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"ulascansenturk/localinfo-service/internal/display"
	"ulascansenturk/localinfo-service/internal/localinfo"
)

// Time region updates arrive once per second; a slow stream reader loses some
// of them. Conditions and icon updates are never dropped.
const streamBufferSize = 16

type ViewOpener interface {
	Open(ctx context.Context, opts localinfo.Options, onChange display.ChangeFunc) *localinfo.View
}

type LocalInfoHandler struct {
	views   ViewOpener
	timeout time.Duration
	router  chi.Router
}

func NewLocalInfoHandler(views ViewOpener, timeout time.Duration) *LocalInfoHandler {
	h := &LocalInfoHandler{
		views:   views,
		timeout: timeout,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	// Every other path serves the same view; the route extractor decides
	// whether it names a location.
	r.Get("/*", h.GetLocalInfo)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})

	h.router = r
	return h
}

func (h *LocalInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *LocalInfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *LocalInfoHandler) GetLocalInfo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := localinfo.Options{
		Path:        r.URL.Path,
		PostalCode:  q.Get("postal_code"),
		ContainerID: q.Get("container"),
	}

	if raw := q.Get("utc_offset_hours"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "utc_offset_hours must be an integer")
			return
		}
		opts.UTCOffsetHours = &offset
	}

	if wantsEventStream(r) {
		h.streamLocalInfo(w, r, opts)
		return
	}

	view := h.views.Open(r.Context(), opts, nil)
	defer view.Close()

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	outcome, err := view.Wait(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("container", view.Surface.Snapshot().ContainerID).
			Str("state", string(outcome.State)).
			Msg("responding before weather pipeline finished")
	}

	respondWithJSON(w, http.StatusOK, newLocalInfoResponse(view, outcome))
}

func (h *LocalInfoHandler) streamLocalInfo(w http.ResponseWriter, r *http.Request, opts localinfo.Options) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	updates := make(chan regionUpdate, streamBufferSize)
	stop := make(chan struct{})
	defer close(stop)

	view := h.views.Open(r.Context(), opts, regionForwarder(updates, stop))
	defer view.Close()

	prepareSSE(w)
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, flusher, "snapshot", view.Surface.Snapshot()); err != nil {
		return
	}

	done := view.Done()
	for {
		select {
		case <-r.Context().Done():
			return
		case u := <-updates:
			if err := writeEvent(w, flusher, string(u.region), u.text); err != nil {
				return
			}
		case <-done:
			done = nil

			if !drainUpdates(w, flusher, updates) {
				return
			}

			outcome, err := view.Wait(r.Context())
			if err != nil {
				return
			}
			if err := writeEvent(w, flusher, "outcome", newOutcomeEvent(outcome)); err != nil {
				return
			}

			// Nothing else will change on a view without a location.
			if !view.Matched {
				return
			}
		}
	}
}

// regionForwarder queues region writes for a stream. A time update is dropped
// when the queue is full; other regions wait for room until stop is closed.
func regionForwarder(updates chan<- regionUpdate, stop <-chan struct{}) display.ChangeFunc {
	return func(region display.Region, text string) {
		u := regionUpdate{region: region, text: text}

		if region == display.RegionTime {
			select {
			case updates <- u:
			default:
			}
			return
		}

		select {
		case updates <- u:
		case <-stop:
		}
	}
}

func drainUpdates(w http.ResponseWriter, flusher http.Flusher, updates <-chan regionUpdate) bool {
	for {
		select {
		case u := <-updates:
			if err := writeEvent(w, flusher, string(u.region), u.text); err != nil {
				return false
			}
		default:
			return true
		}
	}
}

func wantsEventStream(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}
