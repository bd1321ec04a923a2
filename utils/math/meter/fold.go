// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ava-labs/ratemeter/utils/buffer"
)

const (
	meanStr     = "mean"
	midpointStr = "midpoint"
)

var ErrUnknownFold = errors.New("unknown fold")

// Fold selects how a Rolling meter turns its history of marks into a rate.
type Fold int

const (
	// MeanFold reports the number of intervals in the history divided by the
	// time they span, which is the inverse of the mean interval.
	MeanFold Fold = iota

	// MidpointFold walks the intervals from oldest to newest, blending each
	// one into the running value with
	//
	//	rate = windowSize / ((rate + interval) / 2)
	//
	// starting from 0. The result depends on the order of the intervals,
	// favours recent ones, and mixes a rate with an interval, so it does not
	// settle on the true rate for a steady input. It is kept for callers that
	// depend on its exact output.
	MidpointFold
)

// ToFold is the inverse of Fold.String.
func ToFold(s string) (Fold, error) {
	switch strings.ToLower(s) {
	case meanStr:
		return MeanFold, nil
	case midpointStr:
		return MidpointFold, nil
	default:
		return MeanFold, fmt.Errorf("%w: %q", ErrUnknownFold, s)
	}
}

func (f Fold) String() string {
	switch f {
	case MeanFold:
		return meanStr
	case MidpointFold:
		return midpointStr
	default:
		return "unknown"
	}
}

// rate folds every adjacent pair of [history] in chronological order. Fewer
// than two marks produce 0.
func (f Fold) rate(history buffer.Deque[time.Time], windowSize uint64) float64 {
	var (
		rate     float64
		span     time.Duration
		previous time.Time
	)
	for i := 0; i < history.Len(); i++ {
		current, _ := history.Index(i)
		if i == 0 {
			previous = current
			continue
		}

		switch f {
		case MidpointFold:
			interval := seconds(previous, current)
			rate = float64(windowSize) / ((rate + interval) / 2)
		default:
			if interval := current.Sub(previous); interval > 0 {
				span += interval
			}
			rate = float64(i) / span.Seconds()
		}
		previous = current
	}
	return rate
}
