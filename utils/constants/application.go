// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

const (
	AppName = "ratemeter"

	// EnvVarPrefix is prepended to the upper-cased flag names when reading
	// configuration from the environment, e.g. RATEMETER_WINDOW_SIZE.
	EnvVarPrefix = "RATEMETER"

	// DefaultMetricsNamespace is the namespace of the exported meter metrics.
	DefaultMetricsNamespace = "ratemeter"
)
