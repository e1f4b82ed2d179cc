package busan

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// TaskFunc is a unit of work multiplexed by Mux.
type TaskFunc[T any] func(context.Context) (T, error)

// ErrNilTask is the failure reason settled for a nil task in the input.
var ErrNilTask = errors.New("busan: nil task")

// Mux streams the outcomes of a fixed set of tasks in completion order.
//
// All tasks start at construction and run to completion; Mux never
// cancels them. Each task settles exactly once into exactly one Outcome,
// delivered exactly once by Next. Next and All may be called from
// multiple goroutines; every delivered Outcome goes to exactly one
// caller.
type Mux[T any] struct {
	eg      *errgroup.Group
	settled chan Outcome[T]
	pending atomic.Int64

	mu sync.Mutex // serializes delivery
}

// New starts every task and returns a Mux over their settlements.
//
// The slice is snapshotted; later mutation by the caller has no effect.
// ctx is handed to each task as-is — Mux adds no deadline and no
// cancellation of its own. A nil task settles immediately as a failure
// carrying ErrNilTask.
func New[T any](ctx context.Context, tasks []TaskFunc[T], opts ...Option) *Mux[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Mux[T]{
		eg:      new(errgroup.Group),
		settled: make(chan Outcome[T], len(tasks)),
	}
	if cfg.maxConcurrency > 0 {
		m.eg.SetLimit(cfg.maxConcurrency)
	}
	m.pending.Store(int64(len(tasks)))

	snapshot := append([]TaskFunc[T](nil), tasks...)

	// Launch off the constructor: with a concurrency limit, eg.Go blocks
	// until a slot frees, and New must not.
	go func() {
		for i, task := range snapshot {
			i, task := i, task
			if task == nil {
				m.settled <- Outcome[T]{Index: i, Err: ErrNilTask}
				continue
			}
			m.eg.Go(func() error {
				m.settled <- settle(ctx, i, task, cfg.panicToError)
				return nil
			})
		}
	}()

	return m
}

// settle runs one task and converts its settlement to an Outcome. It
// never fails: a task error becomes a failure Outcome, and so does a
// panic when panicToError is set.
func settle[T any](ctx context.Context, idx int, task TaskFunc[T], panicToError bool) (out Outcome[T]) {
	out.Index = idx

	if panicToError {
		defer func() {
			if r := recover(); r != nil {
				out = Outcome[T]{Index: idx, Err: fmt.Errorf("busan: panic recovered: %v", r)}
			}
		}()
	}

	value, err := task(ctx)
	if err != nil {
		out.Err = err
		return out
	}

	out.Value = value
	out.OK = true
	return out
}

// Next blocks until one undelivered task settles, or the caller context
// ends.
//
// Once every outcome has been delivered, Next returns (zero, false, nil)
// immediately, forever. err reports only ctx; a failing task surfaces as
// a failure Outcome with ok=true. When ctx ends first, nothing is
// delivered and nothing is lost: the settlement stays available to a
// later call.
func (m *Mux[T]) Next(ctx context.Context) (Outcome[T], bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var zero Outcome[T]

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending.Load() == 0 {
		return zero, false, nil
	}

	select {
	case out := <-m.settled:
		m.pending.Add(-1)
		return out, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

// All drains the Mux: repeated Next accumulated in settlement order.
//
// On a full drain the result holds one Outcome per task. If ctx ends
// first, All returns what it drained so far along with ctx's error.
func (m *Mux[T]) All(ctx context.Context) ([]Outcome[T], error) {
	outs := make([]Outcome[T], 0, m.Len())
	for {
		out, ok, err := m.Next(ctx)
		if err != nil {
			return outs, err
		}
		if !ok {
			return outs, nil
		}
		outs = append(outs, out)
	}
}

// Outcomes adapts Next(ctx) into a range-friendly channel.
//
// The channel yields settlements in the same completion order as Next
// and closes when the Mux is drained or the caller context ends.
// Outcomes competes with any concurrent Next callers for delivery.
func (m *Mux[T]) Outcomes(ctx context.Context) <-chan Outcome[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	ch := make(chan Outcome[T])
	go func() {
		defer close(ch)
		for {
			out, ok, err := m.Next(ctx)
			if err != nil || !ok {
				return
			}

			select {
			case ch <- out:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// Len reports how many tasks have not yet been delivered.
//
// It starts at the number of tasks given to New, drops by one per
// delivered Outcome, and stays at zero once the Mux is drained. Safe to
// call while another goroutine is blocked in Next.
func (m *Mux[T]) Len() int {
	return int(m.pending.Load())
}
