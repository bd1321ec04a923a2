// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"fmt"
	"strconv"
)

// Format renders the rate of [m] as "<rate> Hz".
func Format(m Meter) string {
	return formatRate(m.Rate()) + " Hz"
}

// Debug renders [m] as "{ samples: <window size>, rate: <rate> }".
func Debug(m Meter) string {
	return fmt.Sprintf("{ samples: %d, rate: %s }", m.WindowSize(), formatRate(m.Rate()))
}

// formatRate uses the shortest representation that round-trips, so 0 is
// printed as "0" and 100 as "100".
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
