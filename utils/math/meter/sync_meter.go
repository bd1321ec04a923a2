// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import "sync"

var _ Meter = (*syncMeter)(nil)

type syncMeter struct {
	lock  sync.RWMutex
	meter Meter
}

// NewSyncMeter wraps [meter] so that it can be used from multiple goroutines.
func NewSyncMeter(meter Meter) Meter {
	return &syncMeter{
		meter: meter,
	}
}

func (s *syncMeter) Mark() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.meter.Mark()
}

func (s *syncMeter) Rate() float64 {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.meter.Rate()
}

func (s *syncMeter) WindowSize() uint64 {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.meter.WindowSize()
}

func (s *syncMeter) SetWindowSize(windowSize uint64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.meter.SetWindowSize(windowSize)
}

func (s *syncMeter) String() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return Format(s.meter)
}

func (s *syncMeter) GoString() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return Debug(s.meter)
}
