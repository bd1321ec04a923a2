// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ava-labs/ratemeter/driver"
	"github.com/ava-labs/ratemeter/utils/logging"
	"github.com/ava-labs/ratemeter/utils/math/meter"
	"github.com/ava-labs/ratemeter/utils/wrappers"
)

var (
	ErrNonPositivePeriod         = errors.New("period must be positive")
	ErrNonPositiveReportInterval = errors.New("report interval must be positive")
	ErrEmptyMetricsNamespace     = errors.New("metrics namespace must not be empty")
)

type Config struct {
	Strategy         meter.Strategy `json:"strategy"`
	Fold             meter.Fold     `json:"fold"`
	WindowSize       uint64         `json:"windowSize"`
	MetricsNamespace string         `json:"metricsNamespace"`

	DriverConfig  driver.Config  `json:"driverConfig"`
	LoggingConfig logging.Config `json:"loggingConfig"`
}

// GetConfig reads and validates every setting from [v]. All invalid settings
// are reported together.
func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config Config
		errs   wrappers.Errs
		err    error
	)

	config.Strategy, err = meter.ToStrategy(v.GetString(StrategyKey))
	errs.Add(err)

	config.Fold, err = meter.ToFold(v.GetString(FoldKey))
	errs.Add(err)

	config.WindowSize = v.GetUint64(WindowSizeKey)
	if config.Strategy == meter.RollingStrategy && config.WindowSize == 0 {
		errs.Add(fmt.Errorf("%w: %q is 0 with the %s strategy", meter.ErrInvalidWindowSize, WindowSizeKey, meter.RollingStrategy))
	}

	config.MetricsNamespace = v.GetString(MetricsNamespaceKey)
	if config.MetricsNamespace == "" {
		errs.Add(ErrEmptyMetricsNamespace)
	}

	config.DriverConfig, err = getDriverConfig(v)
	errs.Add(err)

	config.LoggingConfig, err = getLoggingConfig(v)
	errs.Add(err)

	return config, errs.Joined()
}

func getDriverConfig(v *viper.Viper) (driver.Config, error) {
	config := driver.Config{
		Period:         v.GetDuration(PeriodKey),
		Marks:          v.GetUint64(MarksKey),
		ReportInterval: v.GetDuration(ReportIntervalKey),
		PrintMetrics:   v.GetBool(PrintMetricsKey),
	}

	errs := wrappers.Errs{}
	if config.Period <= 0 {
		errs.Add(fmt.Errorf("%w: %q is %s", ErrNonPositivePeriod, PeriodKey, config.Period))
	}
	if config.ReportInterval <= 0 {
		errs.Add(fmt.Errorf("%w: %q is %s", ErrNonPositiveReportInterval, ReportIntervalKey, config.ReportInterval))
	}
	return config, errs.Joined()
}

// ReloadLogLevels re-reads the config file, if one was specified, and returns
// the file and display log levels. Flags and environment variables still take
// precedence over the file.
func ReloadLogLevels(v *viper.Viper) (logging.Level, logging.Level, error) {
	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return logging.Info, logging.Info, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return getLogLevels(v)
}

func getLogLevels(v *viper.Viper) (logging.Level, logging.Level, error) {
	errs := wrappers.Errs{}
	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	errs.Add(err)
	displayLevel, err := logging.ToLevel(v.GetString(LogDisplayLevelKey))
	errs.Add(err)
	return logLevel, displayLevel, errs.Joined()
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	var (
		config = logging.DefaultConfig()
		errs   wrappers.Errs
		err    error
	)

	config.LogLevel, config.DisplayLevel, err = getLogLevels(v)
	errs.Add(err)

	config.DisplayHighlight, err = logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stdout.Fd())
	errs.Add(err)

	config.Directory = v.GetString(LogDirKey)
	config.MaxSize = v.GetInt(LogMaxSizeKey)
	config.MaxFiles = v.GetInt(LogMaxFilesKey)
	config.MaxAge = v.GetInt(LogMaxAgeKey)
	config.Compress = v.GetBool(LogCompressKey)
	return config, errs.Joined()
}
