package clock

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"ulascansenturk/localinfo-service/internal/localtime"
)

const tickInterval = time.Second

// RenderFunc receives the formatted local time on every tick.
type RenderFunc func(formatted string)

// Ticker redraws local time once per second until Stop is called.
type Ticker struct {
	clock          clockwork.Clock
	utcOffsetHours int
	render         RenderFunc

	ticker   clockwork.Ticker
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Start renders the current shifted time immediately and then once per second.
// The returned Ticker must be stopped by its owner.
func Start(clk clockwork.Clock, utcOffsetHours int, render RenderFunc) *Ticker {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	t := &Ticker{
		clock:          clk,
		utcOffsetHours: utcOffsetHours,
		render:         render,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	t.tick()

	t.ticker = clk.NewTicker(tickInterval)
	go t.run()

	return t
}

func (t *Ticker) run() {
	defer close(t.done)
	defer t.ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-t.ticker.Chan():
			t.tick()
		}
	}
}

func (t *Ticker) tick() {
	formatted := localtime.Now(t.clock.Now(), t.utcOffsetHours)

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Int("utc_offset_hours", t.utcOffsetHours).
				Msg("clock render panicked")
		}
	}()

	t.render(formatted)
}

// Stop cancels the ticker and waits for the tick goroutine to exit. Safe to call
// more than once.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
	<-t.done
}
