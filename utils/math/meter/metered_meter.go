// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/ratemeter/utils/wrappers"
)

var _ Meter = (*meteredMeter)(nil)

type meteredMeter struct {
	Meter

	marks             prometheus.Counter
	windowSizeChanges prometheus.Counter
}

// NewMeteredMeter wraps [meter] and reports its state to [registerer] under
// [namespace]:
//
//   - marks: the number of times Mark was called
//   - window_size_changes: the number of successful SetWindowSize calls
//   - rate: the current Rate, read on every gather
//   - window_size: the current WindowSize, read on every gather
//
// The gauges read [meter] while the registry is gathered, so [meter] must be
// safe for concurrent use if gathering can race with marking.
func NewMeteredMeter(
	namespace string,
	registerer prometheus.Registerer,
	meter Meter,
) (Meter, error) {
	m := &meteredMeter{
		Meter: meter,
		marks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "marks",
			Help:      "# of cycles marked",
		}),
		windowSizeChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "window_size_changes",
			Help:      "# of times the window size was changed",
		}),
	}
	rate := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rate",
			Help:      "Most recently computed rate in Hz",
		},
		meter.Rate,
	)
	windowSize := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_size",
			Help:      "# of cycles considered when computing the rate",
		},
		func() float64 {
			return float64(meter.WindowSize())
		},
	)

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.marks),
		registerer.Register(m.windowSizeChanges),
		registerer.Register(rate),
		registerer.Register(windowSize),
	)
	return m, errs.Err
}

func (m *meteredMeter) Mark() {
	m.Meter.Mark()
	m.marks.Inc()
}

func (m *meteredMeter) SetWindowSize(windowSize uint64) error {
	if err := m.Meter.SetWindowSize(windowSize); err != nil {
		return err
	}
	m.windowSizeChanges.Inc()
	return nil
}

func (m *meteredMeter) String() string {
	return Format(m.Meter)
}

func (m *meteredMeter) GoString() string {
	return Debug(m.Meter)
}
