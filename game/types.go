// Package game provides tunable options and error definitions for the
// punctual-reachability solver.
package game

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for solver execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("game: graph is nil")

	// ErrNegativeHorizon is returned for a horizon below zero.
	ErrNegativeHorizon = errors.New("game: horizon must be non-negative")

	// ErrTargetLength is returned when the target vector length differs
	// from the graph's node count.
	ErrTargetLength = errors.New("game: target vector length mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("game: invalid option supplied")
)

// Option configures solver behavior via functional arguments. An
// invalid Option (e.g. negative worker count) is recorded internally
// and surfaced as ErrOptionViolation when ReachableAt is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Ctx allows cancellation between backward-induction steps.
	Ctx context.Context

	// Workers is the number of goroutines sweeping nodes within one
	// step. 0 or 1 keeps the sweep sequential.
	Workers int

	// OnStep is called after each backward step i with the freshly
	// computed winning region W_i. The slice is reused between steps
	// and must not be retained or mutated.
	OnStep func(i int, wins []bool)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - sequential sweep (Workers == 0)
//   - no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 0,
		OnStep:  func(int, []bool) {},
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers distributes each per-step node sweep over n goroutines on
// disjoint index ranges.
//
//	n > 1:  parallel sweep with n workers
//	n == 0 or n == 1: sequential sweep
//	n < 0:  invalid option → ErrOptionViolation
//
// The sweep at step i reads only the frozen region W_{i+1}, so workers
// never observe each other's writes.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnStep registers a callback observing each intermediate winning
// region, outermost step first (i = k-1 down to 0).
func WithOnStep(fn func(i int, wins []bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
