// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/ratemeter/utils/math/meter/metermock"
)

func TestSyncMeterForwards(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	inner := metermock.NewMeter(ctrl)
	m := NewSyncMeter(inner)

	inner.EXPECT().Mark()
	m.Mark()

	inner.EXPECT().Rate().Return(42.0)
	require.Equal(42.0, m.Rate())

	inner.EXPECT().WindowSize().Return(uint64(7))
	require.Equal(uint64(7), m.WindowSize())

	inner.EXPECT().SetWindowSize(uint64(0)).Return(ErrInvalidWindowSize)
	require.ErrorIs(m.SetWindowSize(0), ErrInvalidWindowSize)
}

func TestSyncMeterConcurrentMarks(t *testing.T) {
	require := require.New(t)

	const (
		numGoroutines = 8
		numMarks      = 1000
	)

	d := NewDiscrete(numGoroutines*numMarks+1, WithClock(newFakeClock()))
	m := NewSyncMeter(d)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < numMarks; j++ {
				m.Mark()
				_ = m.Rate()
			}
		}()
	}
	wg.Wait()

	require.Equal(uint64(numGoroutines*numMarks), d.CyclesSinceRecompute())
	require.Zero(m.Rate())
}
