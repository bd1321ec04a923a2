// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name          string
		meter         func(clock Clock) Meter
		expectedRate  string
		expectedDebug string
	}{
		{
			name: "discrete before first window",
			meter: func(clock Clock) Meter {
				return NewDiscrete(10, WithClock(clock))
			},
			expectedRate:  "0 Hz",
			expectedDebug: "{ samples: 10, rate: 0 }",
		},
		{
			name: "discrete after first window",
			meter: func(clock Clock) Meter {
				return NewDiscrete(4, WithClock(clock))
			},
			expectedRate:  "100 Hz",
			expectedDebug: "{ samples: 4, rate: 100 }",
		},
		{
			name: "rolling",
			meter: func(clock Clock) Meter {
				return MustNewRolling(10, WithClock(clock))
			},
			expectedRate:  "100 Hz",
			expectedDebug: "{ samples: 10, rate: 100 }",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			clock := newFakeClock()
			m := test.meter(clock)
			for i := 0; i < 4; i++ {
				clock.Advance(period)
				m.Mark()
			}

			require.Equal(test.expectedRate, Format(m))
			require.Equal(test.expectedDebug, Debug(m))
			require.Equal(test.expectedRate, fmt.Sprint(m))
			require.Equal(test.expectedDebug, fmt.Sprintf("%#v", m))
		})
	}
}

func TestFormatWrappedMeters(t *testing.T) {
	require := require.New(t)

	clock := newFakeClock()
	m := NewSyncMeter(NewDiscrete(1, WithClock(clock)))
	clock.Advance(4 * period)
	m.Mark()

	require.Equal("25 Hz", fmt.Sprint(m))
	require.Equal("{ samples: 1, rate: 25 }", fmt.Sprintf("%#v", m))
}

func TestFormatRate(t *testing.T) {
	require := require.New(t)

	require.Equal("0", formatRate(0))
	require.Equal("99.5", formatRate(99.5))
	require.Equal("+Inf", formatRate(math.Inf(1)))
}
