//go:build unit

package poller_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"transfer-booking/internal/client/poller"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func halfJitter(max time.Duration) time.Duration { return max / 2 }

func noJitter(time.Duration) time.Duration { return 0 }

func pendingResponse() *poller.Response {
	return &poller.Response{Paid: false, Booking: &queries.BookingView{Status: "PENDING"}}
}

func paidResponse() *poller.Response {
	return &poller.Response{Paid: true, Booking: &queries.BookingView{Status: "PAID"}}
}

var alwaysPending = poller.QuerierFunc(func(context.Context, string) (*poller.Response, error) {
	return pendingResponse(), nil
})

// recorder answers from a script and records when each request was issued.
type recorder struct {
	mu     sync.Mutex
	clock  clock.Clock
	issued []time.Time
	answer func(n int) (*poller.Response, error)
}

func (r *recorder) QuerySession(_ context.Context, _ string) (*poller.Response, error) {
	r.mu.Lock()
	r.issued = append(r.issued, r.clock.Now())
	n := len(r.issued)
	r.mu.Unlock()
	return r.answer(n)
}

func (r *recorder) Issued() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Time(nil), r.issued...)
}

func sum(ds []time.Duration) time.Duration {
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total
}

func TestPoller_NextDelay(t *testing.T) {
	opts := poller.DefaultOptions()

	t.Run("bounded by base and cap", func(t *testing.T) {
		for _, jitter := range []poller.Jitter{
			noJitter,
			func(max time.Duration) time.Duration { return max - 1 },
		} {
			p := poller.New(alwaysPending, opts, poller.WithJitter(jitter))
			for attempt := 1; attempt <= 20; attempt++ {
				d := p.NextDelay(attempt)
				assert.GreaterOrEqual(t, d, opts.BaseDelay, "attempt %d", attempt)
				assert.LessOrEqual(t, d, opts.MaxDelay, "attempt %d", attempt)
			}
		}
	})

	t.Run("non-decreasing without jitter", func(t *testing.T) {
		p := poller.New(alwaysPending, opts, poller.WithJitter(noJitter))
		prev := time.Duration(0)
		for attempt := 1; attempt <= 20; attempt++ {
			d := p.NextDelay(attempt)
			assert.GreaterOrEqual(t, d, prev)
			prev = d
		}
		assert.Equal(t, time.Second, p.NextDelay(1))
		assert.Equal(t, 1800*time.Millisecond, p.NextDelay(2))
		assert.Equal(t, 5*time.Second, p.NextDelay(10))
	})

	t.Run("default jitter stays inside the first window", func(t *testing.T) {
		p := poller.New(alwaysPending, opts)
		for range 200 {
			d := p.NextDelay(1)
			assert.GreaterOrEqual(t, d, time.Second)
			assert.Less(t, d, 2*time.Second)
		}
	})
}

func TestPoller_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("never paid within 60s times out once without passing the deadline", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		rec := &recorder{clock: clk, answer: func(int) (*poller.Response, error) { return pendingResponse(), nil }}
		var observed int
		p := poller.New(rec, poller.DefaultOptions(),
			poller.WithClock(clk),
			poller.WithJitter(halfJitter),
			poller.WithObserver(func(int, *poller.Response, error) { observed++ }),
		)

		res := p.Run(ctx, "cs_test_never")

		assert.Equal(t, poller.StateTimedOut, res.State)
		assert.NoError(t, res.Err)
		require.NotNil(t, res.Last)
		assert.False(t, res.Last.Paid)
		assert.Equal(t, 60*time.Second, res.Elapsed)

		issued := rec.Issued()
		require.NotEmpty(t, issued)
		assert.Equal(t, t0, issued[0])
		deadline := t0.Add(60 * time.Second)
		for _, at := range issued {
			assert.False(t, at.After(deadline), "request at %s", at.Sub(t0))
		}
		assert.Equal(t, deadline, issued[len(issued)-1])
		assert.Equal(t, len(issued), res.Attempts)
		assert.Equal(t, len(issued), observed)

		waits := clk.Waits()
		for _, w := range waits {
			assert.LessOrEqual(t, w, 5*time.Second)
			assert.Positive(t, w)
		}
		assert.Equal(t, 60*time.Second, sum(waits))
		assert.Equal(t, []time.Duration{1500 * time.Millisecond, 2300 * time.Millisecond, 3740 * time.Millisecond}, waits[:3])
	})

	t.Run("confirms on first paid response and fires the side effect once", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		rec := &recorder{clock: clk, answer: func(n int) (*poller.Response, error) {
			if n < 3 {
				return pendingResponse(), nil
			}
			return paidResponse(), nil
		}}
		var confirmed atomic.Int32
		p := poller.New(rec, poller.DefaultOptions(),
			poller.WithClock(clk),
			poller.WithJitter(noJitter),
			poller.WithOnConfirmed(func(poller.Response) { confirmed.Add(1) }),
		)

		res := p.Run(ctx, "cs_test_paid")
		assert.Equal(t, poller.StateConfirmed, res.State)
		assert.Equal(t, 3, res.Attempts)
		assert.True(t, res.Last.Paid)

		again := p.Run(ctx, "cs_test_paid")
		assert.Equal(t, poller.StateConfirmed, again.State)
		assert.Equal(t, int32(1), confirmed.Load())
	})

	t.Run("initial fetch retries transient failures with its own backoff", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		rec := &recorder{clock: clk, answer: func(n int) (*poller.Response, error) {
			if n <= 2 {
				return nil, errs.Mark(errors.New("connection refused"), poller.ErrTransient)
			}
			return paidResponse(), nil
		}}
		p := poller.New(rec, poller.DefaultOptions(), poller.WithClock(clk), poller.WithJitter(noJitter))

		res := p.Run(ctx, "cs_test_flaky")
		assert.Equal(t, poller.StateConfirmed, res.State)
		assert.Equal(t, 3, res.Attempts)
		assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, clk.Waits())
	})

	t.Run("transient failures keep polling", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		rec := &recorder{clock: clk, answer: func(n int) (*poller.Response, error) {
			switch {
			case n == 1:
				return pendingResponse(), nil
			case n < 8:
				return nil, errs.Mark(errors.New("502"), poller.ErrTransient)
			default:
				return paidResponse(), nil
			}
		}}
		p := poller.New(rec, poller.DefaultOptions(), poller.WithClock(clk), poller.WithJitter(noJitter))

		res := p.Run(ctx, "cs_test_502")
		assert.Equal(t, poller.StateConfirmed, res.State)
		assert.Equal(t, 8, res.Attempts)
	})

	t.Run("terminal error stops immediately", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		rec := &recorder{clock: clk, answer: func(int) (*poller.Response, error) {
			return nil, errs.Mark(errors.New("404 session_not_found"), poller.ErrTerminal)
		}}
		p := poller.New(rec, poller.DefaultOptions(), poller.WithClock(clk))

		res := p.Run(ctx, "cs_test_missing")
		assert.Equal(t, poller.StateFailed, res.State)
		assert.True(t, errs.Is(res.Err, poller.ErrTerminal))
		assert.Equal(t, 1, res.Attempts)
		assert.Nil(t, res.Last)
		assert.Empty(t, clk.Waits())
	})

	t.Run("terminal error after pending keeps the last response", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		rec := &recorder{clock: clk, answer: func(n int) (*poller.Response, error) {
			if n == 1 {
				return pendingResponse(), nil
			}
			return nil, errs.Mark(errors.New("missing_intent_metadata"), poller.ErrTerminal)
		}}
		p := poller.New(rec, poller.DefaultOptions(), poller.WithClock(clk))

		res := p.Run(ctx, "cs_test_corrupt")
		assert.Equal(t, poller.StateFailed, res.State)
		require.NotNil(t, res.Last)
		assert.Equal(t, "PENDING", res.Last.Booking.Status)
	})

	t.Run("slow last request crossing the deadline gets one re-check", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		opts := poller.DefaultOptions()
		opts.MaxDuration = 3 * time.Second
		rec := &recorder{clock: clk}
		rec.answer = func(n int) (*poller.Response, error) {
			if n == 2 {
				clk.Add(10 * time.Second)
			}
			return pendingResponse(), nil
		}
		p := poller.New(rec, opts, poller.WithClock(clk), poller.WithJitter(noJitter))

		res := p.Run(ctx, "cs_test_slow")
		assert.Equal(t, poller.StateTimedOut, res.State)
		assert.Equal(t, 3, res.Attempts)
	})
}

func TestPoller_Cancel(t *testing.T) {
	t.Run("in-flight request is abandoned", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		started := make(chan struct{})
		q := poller.QuerierFunc(func(context.Context, string) (*poller.Response, error) {
			close(started)
			<-release
			return paidResponse(), nil
		})
		var confirmed atomic.Int32
		p := poller.New(q, poller.DefaultOptions(), poller.WithOnConfirmed(func(poller.Response) { confirmed.Add(1) }))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan poller.Result, 1)
		go func() { done <- p.Run(ctx, "cs_test_cancel") }()

		<-started
		cancel()

		select {
		case res := <-done:
			assert.Equal(t, poller.StateCancelled, res.State)
			assert.ErrorIs(t, res.Err, context.Canceled)
			assert.Nil(t, res.Last)
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not stop")
		}
		assert.Equal(t, int32(0), confirmed.Load())
	})

	t.Run("backoff wait is interrupted", func(t *testing.T) {
		opts := poller.DefaultOptions()
		opts.BaseDelay = time.Hour
		opts.MaxDelay = time.Hour
		var calls atomic.Int32
		q := poller.QuerierFunc(func(context.Context, string) (*poller.Response, error) {
			calls.Add(1)
			return pendingResponse(), nil
		})
		p := poller.New(q, opts)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan poller.Result, 1)
		go func() { done <- p.Run(ctx, "cs_test_wait") }()

		assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
		cancel()

		select {
		case res := <-done:
			assert.Equal(t, poller.StateCancelled, res.State)
			require.NotNil(t, res.Last)
			assert.Equal(t, int32(1), calls.Load())
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not stop")
		}
	})
}
