// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/ratemeter/utils/constants"
	"github.com/ava-labs/ratemeter/utils/logging"
	"github.com/ava-labs/ratemeter/utils/math/meter"
)

// BuildFlagSet returns the complete set of flags for ratemeter
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a YAML or JSON config file. Flags and environment variables take precedence over it")
	fs.Bool(VersionKey, false, "If true, print version and quit")

	// Meter
	fs.String(StrategyKey, meter.RollingStrategy.String(), fmt.Sprintf("Rate estimation strategy. One of {%s, %s}", meter.DiscreteStrategy, meter.RollingStrategy))
	fs.Uint64(WindowSizeKey, 10, "Number of cycles the meter considers when computing the rate")
	fs.String(FoldKey, meter.MeanFold.String(), fmt.Sprintf("How the rolling strategy combines its history. One of {%s, %s}", meter.MeanFold, meter.MidpointFold))

	// Driver
	fs.Duration(PeriodKey, time.Second, "Time between two marks")
	fs.Uint64(MarksKey, 0, "Number of marks before exiting. 0 runs until interrupted")
	fs.Duration(ReportIntervalKey, time.Second, "Time between two rate reports")

	// Logging
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, logging.Info.String(), "The log display level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors}")
	fs.String(LogDirKey, "", "Logging directory. If empty, logs are only displayed")
	fs.Int(LogMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Int(LogMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogCompressKey, false, "If true, compress rotated log files")

	// Metrics
	fs.String(MetricsNamespaceKey, constants.DefaultMetricsNamespace, "Namespace of the meter metrics")
	fs.Bool(PrintMetricsKey, false, "If true, print the meter metrics in the Prometheus text format on exit")
}

// BuildViper returns a viper bound to the already parsed [fs], to environment
// variables prefixed with RATEMETER_ and, if one is specified, to a config
// file.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}
