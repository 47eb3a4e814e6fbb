// Package poller confirms a checkout session after the provider redirect by
// asking the session query endpoint with bounded exponential backoff until the
// booking is paid or the deadline passes.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/usecase/queries"

	"github.com/avast/retry-go/v4"
)

// ErrTerminal marks a query failure that retrying cannot fix.
var ErrTerminal = errs.New("session query failed permanently")

type Response struct {
	Paid    bool                 `json:"paid"`
	Booking *queries.BookingView `json:"booking"`
}

type Querier interface {
	QuerySession(ctx context.Context, sessionID string) (*Response, error)
}

// QuerierFunc adapts a function to Querier.
type QuerierFunc func(ctx context.Context, sessionID string) (*Response, error)

func (f QuerierFunc) QuerySession(ctx context.Context, sessionID string) (*Response, error) {
	return f(ctx, sessionID)
}

type State string

const (
	StateConfirmed State = "confirmed"
	StateTimedOut  State = "timed_out"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

type Result struct {
	State    State
	Attempts int
	// Last is the most recent successful response, nil if none arrived.
	Last    *Response
	Err     error
	Elapsed time.Duration
}

type Poller struct {
	querier     Querier
	opts        Options
	clock       clock.Clock
	jitter      Jitter
	onConfirmed func(Response)
	observe     func(attempt int, resp *Response, err error)
	confirmOnce sync.Once
}

func New(q Querier, opts Options, options ...Option) *Poller {
	p := &Poller{
		querier: q,
		opts:    opts.withDefaults(),
		clock:   clock.NewRealClock(),
		jitter:  uniformJitter,
	}
	for _, o := range options {
		o(p)
	}
	return p
}

// NextDelay is the wait after the given attempt, before clamping to the deadline.
func (p *Poller) NextDelay(attempt int) time.Duration {
	d := backoff(p.opts.BaseDelay, p.opts.Factor, attempt) + p.jitter(p.opts.BaseDelay)
	return min(d, p.opts.MaxDelay)
}

// run holds the state of one poll cycle.
type run struct {
	p         *Poller
	sessionID string
	start     time.Time
	deadline  time.Time
	attempt   int
	issuedAt  time.Time
	last      *Response
}

// Run blocks until the session is confirmed, the deadline passes, a terminal
// error occurs or ctx is cancelled. Exactly one request is in flight at a time.
func (p *Poller) Run(ctx context.Context, sessionID string) Result {
	now := p.clock.Now()
	r := &run{
		p:         p,
		sessionID: sessionID,
		start:     now,
		deadline:  now.Add(p.opts.MaxDuration),
	}

	resp, err := r.initialFetch(ctx)
	for {
		if ctx.Err() != nil {
			return r.finish(StateCancelled, ctx.Err())
		}
		if err == nil {
			r.last = resp
			if resp.Paid {
				p.confirm(*resp)
				return r.finish(StateConfirmed, nil)
			}
		} else if errs.Is(err, ErrTerminal) {
			return r.finish(StateFailed, err)
		}

		remaining := r.deadline.Sub(p.clock.Now())
		if remaining <= 0 {
			if !r.issuedAt.Before(r.deadline) {
				return r.finish(StateTimedOut, err)
			}
			// the last request started before the deadline but resolved after it
			resp, err = r.query(ctx)
			continue
		}

		delay := min(p.NextDelay(r.attempt), remaining)
		select {
		case <-ctx.Done():
			return r.finish(StateCancelled, ctx.Err())
		case <-p.clock.After(delay):
		}
		resp, err = r.query(ctx)
	}
}

// initialFetch retries transient failures of the first request a few times
// with a short backoff, never waiting past the deadline.
func (r *run) initialFetch(ctx context.Context) (*Response, error) {
	opts := r.p.opts
	return retry.DoWithData(
		func() (*Response, error) {
			return r.query(ctx)
		},
		retry.Context(ctx),
		retry.WithTimer(r.p.clock),
		retry.Attempts(opts.InitialFetchRetries+1),
		retry.Delay(opts.InitialFetchBackoff),
		retry.DelayType(func(n uint, err error, c *retry.Config) time.Duration {
			return max(0, min(retry.BackOffDelay(n, err, c), r.deadline.Sub(r.p.clock.Now())))
		}),
		retry.RetryIf(func(err error) bool {
			return !errs.Is(err, ErrTerminal) && r.p.clock.Now().Before(r.deadline)
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("initial session fetch failed",
				slog.String("session_id", r.sessionID),
				slog.Uint64("retry", uint64(n+1)),
				slog.String("error", err.Error()))
		}),
	)
}

// query issues one request. On cancellation it returns immediately and the
// request's eventual result is dropped.
func (r *run) query(ctx context.Context) (*Response, error) {
	r.attempt++
	r.issuedAt = r.p.clock.Now()

	type outcome struct {
		resp *Response
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		resp, err := r.p.querier.QuerySession(ctx, r.sessionID)
		if err == nil && resp == nil {
			err = errs.New("empty session response")
		}
		done <- outcome{resp, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		if r.p.observe != nil {
			r.p.observe(r.attempt, o.resp, o.err)
		}
		return o.resp, o.err
	}
}

func (r *run) finish(state State, err error) Result {
	res := Result{
		State:    state,
		Attempts: r.attempt,
		Last:     r.last,
		Elapsed:  r.p.clock.Now().Sub(r.start),
	}
	if state != StateConfirmed {
		res.Err = err
	}
	return res
}

func (p *Poller) confirm(resp Response) {
	p.confirmOnce.Do(func() {
		if p.onConfirmed != nil {
			p.onConfirmed(resp)
		}
	})
}
