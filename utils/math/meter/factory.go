// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"errors"
	"fmt"
	"strings"
)

const (
	discreteStr = "discrete"
	rollingStr  = "rolling"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")

	_ Factory = DiscreteFactory{}
	_ Factory = RollingFactory{}
)

// Factory returns new meters.
type Factory interface {
	New(windowSize uint64) (Meter, error)
}

// DiscreteFactory implements the Factory interface by returning Discrete
// meters.
type DiscreteFactory struct {
	// If nil, the wall clock is used.
	Clock Clock
}

func (f DiscreteFactory) New(windowSize uint64) (Meter, error) {
	var opts []Option
	if f.Clock != nil {
		opts = append(opts, WithClock(f.Clock))
	}
	return NewDiscrete(windowSize, opts...), nil
}

// RollingFactory implements the Factory interface by returning Rolling meters.
type RollingFactory struct {
	// If nil, the wall clock is used.
	Clock Clock
	Fold  Fold
}

func (f RollingFactory) New(windowSize uint64) (Meter, error) {
	opts := []Option{WithFold(f.Fold)}
	if f.Clock != nil {
		opts = append(opts, WithClock(f.Clock))
	}
	m, err := NewRolling(windowSize, opts...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Strategy names one of the meter implementations.
type Strategy int

const (
	DiscreteStrategy Strategy = iota
	RollingStrategy
)

// ToStrategy is the inverse of Strategy.String.
func ToStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case discreteStr:
		return DiscreteStrategy, nil
	case rollingStr:
		return RollingStrategy, nil
	default:
		return DiscreteStrategy, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (s Strategy) String() string {
	switch s {
	case DiscreteStrategy:
		return discreteStr
	case RollingStrategy:
		return rollingStr
	default:
		return "unknown"
	}
}

// NewFactory returns the factory for [strategy]. [fold] is only used by the
// rolling strategy.
func NewFactory(strategy Strategy, fold Fold, clock Clock) (Factory, error) {
	switch strategy {
	case DiscreteStrategy:
		return DiscreteFactory{Clock: clock}, nil
	case RollingStrategy:
		return RollingFactory{Clock: clock, Fold: fold}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
}
