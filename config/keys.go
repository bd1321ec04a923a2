// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey          = "config-file"
	VersionKey             = "version"
	StrategyKey            = "strategy"
	WindowSizeKey          = "window-size"
	FoldKey                = "fold"
	PeriodKey              = "period"
	MarksKey               = "marks"
	ReportIntervalKey      = "report-interval"
	LogLevelKey            = "log-level"
	LogDisplayLevelKey     = "log-display-level"
	LogDisplayHighlightKey = "log-display-highlight"
	LogDirKey              = "log-dir"
	LogMaxSizeKey          = "log-rotater-max-size"
	LogMaxFilesKey         = "log-rotater-max-files"
	LogMaxAgeKey           = "log-rotater-max-age"
	LogCompressKey         = "log-rotater-compress-enabled"
	MetricsNamespaceKey    = "metrics-namespace"
	PrintMetricsKey        = "print-metrics"
)
