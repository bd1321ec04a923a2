// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"time"

	"github.com/ava-labs/ratemeter/utils/buffer"
)

// Past this size the history slice is grown on demand rather than allocated
// up front.
const maxPreallocatedHistory = 1024

var _ Meter = (*Rolling)(nil)

// Rolling records the time of the last [windowSize] cycles and recomputes the
// rate over that history on every mark.
//
// Marking costs O(windowSize), so very large windows are better served by
// Discrete, especially if the rate isn't read every cycle.
type Rolling struct {
	clock Clock
	fold  Fold

	// Chronological; the most recent mark is on the right.
	history buffer.Deque[time.Time]

	rate       float64
	windowSize uint64
}

// NewRolling returns a meter that averages over the last [windowSize] cycles.
// Returns ErrInvalidWindowSize if [windowSize] is 0.
func NewRolling(windowSize uint64, opts ...Option) (*Rolling, error) {
	if windowSize == 0 {
		return nil, ErrInvalidWindowSize
	}
	c := newConfig(opts)
	return &Rolling{
		clock:      c.clock,
		fold:       c.fold,
		history:    newHistory(windowSize),
		windowSize: windowSize,
	}, nil
}

// MustNewRolling is like NewRolling but panics if [windowSize] is 0.
func MustNewRolling(windowSize uint64, opts ...Option) *Rolling {
	r, err := NewRolling(windowSize, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func newHistory(windowSize uint64) buffer.Deque[time.Time] {
	// The deque keeps one free slot, plus one more so that a full window never
	// forces a resize.
	initSize := min(windowSize, maxPreallocatedHistory) + 2
	return buffer.NewUnboundedDeque[time.Time](int(initSize))
}

func (r *Rolling) Mark() {
	// Normally a single eviction, more if the window was shrunk.
	for uint64(r.history.Len()) >= r.windowSize {
		r.history.PopLeft()
	}
	r.history.PushRight(r.clock.Time())

	r.rate = r.fold.rate(r.history, r.windowSize)
}

// Marked marks a copy of [r] and returns the copy. [r], including its history,
// is left unmodified.
func (r Rolling) Marked() Rolling {
	history := newHistory(r.windowSize)
	for _, t := range r.history.List() {
		history.PushRight(t)
	}
	r.history = history
	r.Mark()
	return r
}

func (r *Rolling) Rate() float64 {
	return r.rate
}

func (r *Rolling) WindowSize() uint64 {
	return r.windowSize
}

// SetWindowSize returns ErrInvalidWindowSize, leaving [r] unchanged, if
// [windowSize] is 0. Otherwise the oldest marks are discarded until at most
// [windowSize] remain. The rate is not recomputed until the next mark.
func (r *Rolling) SetWindowSize(windowSize uint64) error {
	if windowSize == 0 {
		return ErrInvalidWindowSize
	}
	r.windowSize = windowSize
	for uint64(r.history.Len()) > r.windowSize {
		r.history.PopLeft()
	}
	return nil
}

// Len returns the number of marks currently held in the history.
func (r *Rolling) Len() int {
	return r.history.Len()
}

func (r *Rolling) String() string {
	return Format(r)
}

func (r *Rolling) GoString() string {
	return Debug(r)
}
