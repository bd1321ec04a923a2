// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meter measures the rate, in Hz, at which a periodic activity occurs.
//
// Call Mark at the start of every cycle of the activity being measured (every
// frame, physics tick, poll, ...) and Rate whenever the current rate is needed.
// Two strategies are provided:
//
//   - Discrete recomputes the rate once every window of cycles. Marking is O(1)
//     but the reported rate lags a change by up to a full window.
//   - Rolling keeps the timestamps of the last window of cycles and recomputes
//     the rate on every mark. Marking is O(window) but the rate reacts
//     immediately.
//
// Meters are not safe for concurrent use. Wrap a meter with NewSyncMeter to
// share it between goroutines.
package meter

import (
	"errors"
	"time"

	"github.com/ava-labs/ratemeter/utils/timer/mockable"
)

var ErrInvalidWindowSize = errors.New("window size must be at least 1")

// Meter tracks the rate at which a periodic event occurs.
type Meter interface {
	// Mark notifies the meter that a new cycle of the activity has started.
	Mark()

	// Rate returns the most recently computed rate, in Hz. Zero is returned
	// until enough cycles have been observed to produce a rate.
	Rate() float64

	// WindowSize returns the number of cycles this meter considers when it
	// computes the rate.
	WindowSize() uint64

	// SetWindowSize changes the number of cycles this meter considers. It does
	// not force the rate to be recomputed.
	SetWindowSize(windowSize uint64) error
}

// Clock is the time source a meter reads when it is marked.
type Clock interface {
	Time() time.Time
}

type config struct {
	clock Clock
	fold  Fold
}

// Option configures a meter on construction.
type Option func(*config)

// WithClock replaces the wall clock. Mostly useful to fake time in tests.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithFold selects how a Rolling meter combines its history into a rate. It
// has no effect on a Discrete meter.
func WithFold(fold Fold) Option {
	return func(c *config) {
		c.fold = fold
	}
}

func newConfig(opts []Option) config {
	c := config{
		fold: MeanFold,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.clock == nil {
		c.clock = &mockable.Clock{}
	}
	return c
}

// seconds converts the time elapsed between [start] and [end] into seconds.
// A clock that moved backwards is treated as if no time elapsed.
func seconds(start, end time.Time) float64 {
	elapsed := end.Sub(start)
	if elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}
