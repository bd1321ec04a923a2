// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package driver marks a meter at a fixed period and periodically reports the
// rate it measures.
package driver

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ava-labs/ratemeter/app"
	"github.com/ava-labs/ratemeter/utils/logging"
	"github.com/ava-labs/ratemeter/utils/math/meter"
)

var (
	errAlreadyStarted = errors.New("driver already started")

	_ app.App = (*Driver)(nil)
)

// Summary describes the rates reported over the lifetime of a driver. Reports
// made before the meter produced a finite positive rate are not included.
type Summary struct {
	Marks   uint64
	Reports int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"marks: %d, reports: %d, mean: %.3f Hz, stddev: %.3f Hz, min: %.3f Hz, max: %.3f Hz",
		s.Marks, s.Reports, s.Mean, s.StdDev, s.Min, s.Max,
	)
}

// Driver implements app.App by marking a meter every period.
type Driver struct {
	config   Config
	log      logging.Logger
	meter    meter.Meter
	gatherer prometheus.Gatherer
	out      io.Writer

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	closer    chan struct{}
	done      chan struct{}

	// Only accessed by the marking goroutine until [done] is closed.
	marks uint64
	rates []float64
	err   error
}

// New returns a driver that marks [m] every [config.Period]. Reports are
// written to [out]. If [gatherer] is non-nil and [config.PrintMetrics] is set,
// the gathered metrics are written to [out] on exit.
func New(
	config Config,
	log logging.Logger,
	m meter.Meter,
	gatherer prometheus.Gatherer,
	out io.Writer,
) *Driver {
	return &Driver{
		config:   config,
		log:      log,
		meter:    m,
		gatherer: gatherer,
		out:      out,
		closer:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (d *Driver) Start() error {
	err := errAlreadyStarted
	d.startOnce.Do(func() {
		err = nil
		d.started = true
		d.log.Info("starting driver",
			zap.Stringer("meter", stringer(meter.Debug, d.meter)),
			zap.Duration("period", d.config.Period),
			zap.Uint64("marks", d.config.Marks),
			zap.Duration("reportInterval", d.config.ReportInterval),
		)
		go d.log.RecoverAndPanic(d.run)
	})
	return err
}

func (d *Driver) Stop() error {
	d.stopOnce.Do(func() {
		close(d.closer)
	})
	return nil
}

func (d *Driver) ExitCode() (int, error) {
	if !d.started {
		return 1, errors.New("driver was never started")
	}
	<-d.done
	if d.err != nil {
		return 1, d.err
	}
	return 0, nil
}

// Summary blocks until the driver exits and then describes the reported rates.
func (d *Driver) Summary() Summary {
	<-d.done
	return summarize(d.marks, d.rates)
}

func (d *Driver) run() {
	defer close(d.done)

	// The limiter paces the marks so a late wakeup shortens the next wait
	// instead of shifting every following mark. Its initial token is
	// consumed so that the first mark happens one period after starting.
	pacer := rate.NewLimiter(rate.Every(d.config.Period), 1)
	pacer.Reserve()
	markTimer := time.NewTimer(pacer.Reserve().Delay())
	defer markTimer.Stop()
	reportTicker := time.NewTicker(d.config.ReportInterval)
	defer reportTicker.Stop()

	for d.config.Marks == 0 || d.marks < d.config.Marks {
		select {
		case <-d.closer:
			d.log.Info("driver stopped", zap.Uint64("marks", d.marks))
			d.finish()
			return
		case <-markTimer.C:
			d.meter.Mark()
			d.marks++
			d.log.Verbo("marked", zap.Uint64("marks", d.marks))
			markTimer.Reset(pacer.Reserve().Delay())
		case <-reportTicker.C:
			if err := d.report(); err != nil {
				d.err = err
				return
			}
		}
	}

	d.log.Info("mark limit reached", zap.Uint64("marks", d.marks))
	d.finish()
}

func (d *Driver) report() error {
	measured := d.meter.Rate()
	if measured > 0 && !math.IsInf(measured, 0) && !math.IsNaN(measured) {
		d.rates = append(d.rates, measured)
	}
	if _, err := fmt.Fprintf(d.out, "updating at %s\n", meter.Format(d.meter)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	d.log.Info("rate report",
		zap.Float64("rate", measured),
		zap.Uint64("windowSize", d.meter.WindowSize()),
		zap.Uint64("marks", d.marks),
	)
	d.log.Debug("meter state", zap.Stringer("meter", stringer(meter.Debug, d.meter)))
	return nil
}

func (d *Driver) finish() {
	if err := d.report(); err != nil {
		d.err = err
		return
	}

	summary := summarize(d.marks, d.rates)
	if _, err := fmt.Fprintln(d.out, summary); err != nil {
		d.err = fmt.Errorf("failed to write summary: %w", err)
		return
	}
	d.log.Info("summary",
		zap.Uint64("marks", summary.Marks),
		zap.Int("reports", summary.Reports),
		zap.Float64("mean", summary.Mean),
		zap.Float64("stdDev", summary.StdDev),
	)

	if d.config.PrintMetrics && d.gatherer != nil {
		d.err = d.printMetrics()
	}
}

func (d *Driver) printMetrics() error {
	families, err := d.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(d.out, family); err != nil {
			return fmt.Errorf("failed to write metric %q: %w", family.GetName(), err)
		}
	}
	return nil
}

func summarize(marks uint64, rates []float64) Summary {
	s := Summary{
		Marks:   marks,
		Reports: len(rates),
	}
	switch len(rates) {
	case 0:
		return s
	case 1:
		s.Mean = rates[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(rates, nil)
	}
	s.Min = floats.Min(rates)
	s.Max = floats.Max(rates)
	return s
}

type stringerFunc func() string

func (f stringerFunc) String() string {
	return f()
}

func stringer(format func(meter.Meter) string, m meter.Meter) fmt.Stringer {
	return stringerFunc(func() string {
		return format(m)
	})
}
