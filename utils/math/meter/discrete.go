// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import "time"

var _ Meter = (*Discrete)(nil)

// Discrete counts [windowSize] cycles, then computes the rate over the time
// those cycles took and starts counting again. The reported rate therefore
// reacts to a change only after a full window of cycles.
//
// Until the first window completes, Rate returns 0.
type Discrete struct {
	clock Clock

	// Number of cycles since the rate was last computed
	cycles uint64
	// Start of the current window
	anchor time.Time

	rate       float64
	windowSize uint64
}

// NewDiscrete returns a meter that recomputes its rate every [windowSize]
// cycles.
//
// A [windowSize] of 0 is accepted and behaves exactly like 1: the rate is
// recomputed on every mark from the time elapsed since the previous mark (or
// since construction, for the first mark).
func NewDiscrete(windowSize uint64, opts ...Option) *Discrete {
	c := newConfig(opts)
	return &Discrete{
		clock:      c.clock,
		anchor:     c.clock.Time(),
		windowSize: windowSize,
	}
}

func (d *Discrete) Mark() {
	d.cycles++
	if d.cycles < d.windowSize {
		return
	}

	// If no time has elapsed, the rate is +Inf. This is intentionally not
	// clamped.
	now := d.clock.Time()
	d.rate = float64(d.cycles) / seconds(d.anchor, now)
	d.cycles = 0
	d.anchor = now
}

// Marked marks a copy of [d] and returns the copy. [d] is left unmodified.
func (d Discrete) Marked() Discrete {
	d.Mark()
	return d
}

func (d *Discrete) Rate() float64 {
	return d.rate
}

func (d *Discrete) WindowSize() uint64 {
	return d.windowSize
}

// SetWindowSize never fails. The new size only affects when the current window
// ends, cycles already counted are kept.
func (d *Discrete) SetWindowSize(windowSize uint64) error {
	d.windowSize = windowSize
	return nil
}

// CyclesSinceRecompute returns the number of marks since the rate was last
// computed.
func (d *Discrete) CyclesSinceRecompute() uint64 {
	return d.cycles
}

// TimeSinceRecompute returns the time elapsed since the rate was last computed,
// or since construction if it never was. This reads the clock. A clock that
// moved backwards reports 0.
func (d *Discrete) TimeSinceRecompute() time.Duration {
	return max(d.clock.Time().Sub(d.anchor), 0)
}

func (d *Discrete) String() string {
	return Format(d)
}

func (d *Discrete) GoString() string {
	return Debug(d)
}
