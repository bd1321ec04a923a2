// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/ratemeter/utils/logging"
	"github.com/ava-labs/ratemeter/utils/math/meter"
	"github.com/ava-labs/ratemeter/utils/math/meter/metermock"
)

var errWrite = errors.New("write failed")

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestDriverStopsAtMarkLimit(t *testing.T) {
	require := require.New(t)

	ctrl := gomock.NewController(t)
	m := metermock.NewMeter(ctrl)
	m.EXPECT().Mark().Times(5)
	m.EXPECT().Rate().Return(100.0).AnyTimes()
	m.EXPECT().WindowSize().Return(uint64(10)).AnyTimes()

	out := &bytes.Buffer{}
	d := New(
		Config{
			Period:         time.Millisecond,
			Marks:          5,
			ReportInterval: time.Hour,
		},
		logging.NoLog{},
		m,
		nil,
		out,
	)
	require.NoError(d.Start())

	exitCode, err := d.ExitCode()
	require.NoError(err)
	require.Zero(exitCode)

	summary := d.Summary()
	require.Equal(uint64(5), summary.Marks)
	require.Equal(1, summary.Reports)
	require.Equal(100.0, summary.Mean)
	require.Zero(summary.StdDev)
	require.Contains(out.String(), "updating at 100 Hz\n")
}

func TestDriverStartTwice(t *testing.T) {
	require := require.New(t)

	d := New(
		Config{
			Period:         time.Millisecond,
			Marks:          1,
			ReportInterval: time.Hour,
		},
		logging.NoLog{},
		meter.NewDiscrete(1),
		nil,
		&bytes.Buffer{},
	)
	require.NoError(d.Start())
	require.ErrorIs(d.Start(), errAlreadyStarted)

	_, err := d.ExitCode()
	require.NoError(err)
}

func TestDriverStop(t *testing.T) {
	require := require.New(t)

	out := &bytes.Buffer{}
	d := New(
		Config{
			Period:         time.Millisecond,
			ReportInterval: time.Millisecond,
		},
		logging.NoLog{},
		meter.NewDiscrete(1),
		nil,
		out,
	)
	require.NoError(d.Start())
	time.Sleep(20 * time.Millisecond)
	require.NoError(d.Stop())
	require.NoError(d.Stop())

	exitCode, err := d.ExitCode()
	require.NoError(err)
	require.Zero(exitCode)
	require.True(strings.HasPrefix(out.String(), "updating at "))
	require.Contains(out.String(), "marks: ")
}

func TestDriverWriteFailure(t *testing.T) {
	require := require.New(t)

	d := New(
		Config{
			Period:         time.Millisecond,
			Marks:          1,
			ReportInterval: time.Hour,
		},
		logging.NoLog{},
		meter.NewDiscrete(1),
		nil,
		failingWriter{},
	)
	require.NoError(d.Start())

	exitCode, err := d.ExitCode()
	require.ErrorIs(err, errWrite)
	require.Equal(1, exitCode)
}

func TestDriverNeverStarted(t *testing.T) {
	d := New(Config{}, logging.NoLog{}, meter.NewDiscrete(1), nil, &bytes.Buffer{})

	exitCode, err := d.ExitCode()
	require.Error(t, err)
	require.Equal(t, 1, exitCode)
}

func TestDriverPrintMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	m, err := meter.NewMeteredMeter("test", registry, meter.NewSyncMeter(meter.NewDiscrete(1)))
	require.NoError(err)

	out := &bytes.Buffer{}
	d := New(
		Config{
			Period:         time.Millisecond,
			Marks:          3,
			ReportInterval: time.Hour,
			PrintMetrics:   true,
		},
		logging.NoLog{},
		m,
		registry,
		out,
	)
	require.NoError(d.Start())

	_, err = d.ExitCode()
	require.NoError(err)
	require.Contains(out.String(), "# TYPE test_marks counter\n")
	require.Contains(out.String(), "test_marks 3\n")
	require.Contains(out.String(), "test_window_size 1\n")
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		rates    []float64
		expected Summary
	}{
		{
			name:     "no rates",
			expected: Summary{Marks: 7},
		},
		{
			name:  "single rate",
			rates: []float64{50},
			expected: Summary{
				Marks:   7,
				Reports: 1,
				Mean:    50,
				Min:     50,
				Max:     50,
			},
		},
		{
			name:  "multiple rates",
			rates: []float64{90, 100, 110},
			expected: Summary{
				Marks:   7,
				Reports: 3,
				Mean:    100,
				StdDev:  10,
				Min:     90,
				Max:     110,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			s := summarize(7, test.rates)
			require.Equal(test.expected.Marks, s.Marks)
			require.Equal(test.expected.Reports, s.Reports)
			require.InDelta(test.expected.Mean, s.Mean, 1e-9)
			require.InDelta(test.expected.StdDev, s.StdDev, 1e-9)
			require.Equal(test.expected.Min, s.Min)
			require.Equal(test.expected.Max, s.Max)
		})
	}
}

func TestReportSkipsInfiniteRates(t *testing.T) {
	require := require.New(t)

	ctrl := gomock.NewController(t)
	m := metermock.NewMeter(ctrl)
	// Every report reads the rate once to record it and once to print it.
	m.EXPECT().Rate().Return(math.Inf(1)).Times(2)
	m.EXPECT().Rate().Return(0.0).Times(2)
	m.EXPECT().WindowSize().Return(uint64(1)).AnyTimes()

	d := New(Config{}, logging.NoLog{}, m, nil, &bytes.Buffer{})
	require.NoError(d.report())
	require.NoError(d.report())
	require.Empty(d.rates)
}
