// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package driver

import "time"

type Config struct {
	// Period is the time between two marks.
	Period time.Duration `json:"period"`
	// Marks is the number of marks after which the driver exits. If 0, the
	// driver runs until it is stopped.
	Marks uint64 `json:"marks"`
	// ReportInterval is the time between two rate reports.
	ReportInterval time.Duration `json:"reportInterval"`
	// PrintMetrics writes the gathered metrics in the text exposition format
	// when the driver exits.
	PrintMetrics bool `json:"printMetrics"`
}
