package in

import (
	"context"
	"time"

	"cyberdeck/internal/modules/status/dto"
	statusin "cyberdeck/internal/modules/status/port/in"
)

// TickInterval is the fixed delay between status ticks.
const TickInterval = time.Second

// Ticker owns the recurring timer that drives the status usecase and hands
// each rendered tick to a publish callback. Sampling itself stays clock-free.
type Ticker struct {
	usecase  statusin.Usecase
	publish  func(dto.StatusOutput)
	interval time.Duration
	poke     chan struct{}
}

type TickerOption func(*Ticker)

// WithInterval overrides TickInterval. Only tests should need this.
func WithInterval(d time.Duration) TickerOption {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

func NewTicker(usecase statusin.Usecase, publish func(dto.StatusOutput), opts ...TickerOption) *Ticker {
	t := &Ticker{
		usecase:  usecase,
		publish:  publish,
		interval: TickInterval,
		poke:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run ticks once immediately and then once per interval until ctx is done.
// Ticks never overlap: each runs to completion before the next is considered.
func (t *Ticker) Run(ctx context.Context) error {
	t.tick(ctx)

	timer := time.NewTicker(t.interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			t.tick(ctx)
		case <-t.poke:
			t.tick(ctx)
		}
	}
}

// Poke requests one extra tick as soon as possible, e.g. when the host
// regains focus. It does not shift the regular schedule and multiple pokes
// before the next tick collapse into one.
func (t *Ticker) Poke() {
	select {
	case t.poke <- struct{}{}:
	default:
	}
}

func (t *Ticker) tick(ctx context.Context) {
	out, err := t.usecase.Tick(ctx)
	if err != nil || t.publish == nil {
		return
	}
	t.publish(out)
}
