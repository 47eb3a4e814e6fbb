package poller

import (
	"math"
	"math/rand/v2"
	"time"

	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/config"
)

type Options struct {
	MaxDuration         time.Duration
	BaseDelay           time.Duration
	Factor              float64
	MaxDelay            time.Duration
	InitialFetchRetries uint
	InitialFetchBackoff time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxDuration:         60 * time.Second,
		BaseDelay:           time.Second,
		Factor:              1.8,
		MaxDelay:            5 * time.Second,
		InitialFetchRetries: 3,
		InitialFetchBackoff: 500 * time.Millisecond,
	}
}

func OptionsFromConfig(cfg config.PollConfig) Options {
	return Options{
		MaxDuration:         cfg.MaxDuration,
		BaseDelay:           cfg.BaseDelay,
		Factor:              cfg.Factor,
		MaxDelay:            cfg.MaxDelay,
		InitialFetchRetries: cfg.InitialFetchRetries,
		InitialFetchBackoff: cfg.InitialFetchBackoff,
	}
}

// withDefaults fills zero fields so a partially built Options stays usable.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxDuration <= 0 {
		o.MaxDuration = d.MaxDuration
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = d.BaseDelay
	}
	if o.Factor < 1 {
		o.Factor = d.Factor
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = d.MaxDelay
	}
	if o.InitialFetchBackoff <= 0 {
		o.InitialFetchBackoff = d.InitialFetchBackoff
	}
	return o
}

// Jitter returns a duration in [0, max).
type Jitter func(max time.Duration) time.Duration

func uniformJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return rand.N(max)
}

type Option func(*Poller)

func WithClock(c clock.Clock) Option {
	return func(p *Poller) { p.clock = c }
}

func WithJitter(j Jitter) Option {
	return func(p *Poller) { p.jitter = j }
}

// WithOnConfirmed registers a side effect that runs at most once per Poller.
func WithOnConfirmed(fn func(Response)) Option {
	return func(p *Poller) { p.onConfirmed = fn }
}

// WithObserver is called after every request with its outcome.
func WithObserver(fn func(attempt int, resp *Response, err error)) Option {
	return func(p *Poller) { p.observe = fn }
}

// backoff is base*factor^(attempt-1) before jitter and capping.
func backoff(base time.Duration, factor float64, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(base) * math.Pow(factor, float64(attempt-1))
	if d > float64(math.MaxInt64/2) {
		return time.Duration(math.MaxInt64 / 2)
	}
	return time.Duration(math.Round(d))
}
