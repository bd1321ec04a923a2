// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/ratemeter/app"
	"github.com/ava-labs/ratemeter/config"
	"github.com/ava-labs/ratemeter/driver"
	"github.com/ava-labs/ratemeter/utils/constants"
	"github.com/ava-labs/ratemeter/utils/logging"
	"github.com/ava-labs/ratemeter/utils/math/meter"
	"github.com/ava-labs/ratemeter/version"
)

var errExitCode = errors.New("non-zero exit code")

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	rootCmd := newCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", constants.AppName, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          constants.AppName,
		Short:        "Marks a rate meter at a fixed period and reports the measured rate",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runFunc,
	}
	cmd.Flags().AddFlagSet(config.BuildFlagSet())
	return cmd
}

func runFunc(cmd *cobra.Command, _ []string) error {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return err
	}

	if v.GetBool(config.VersionKey) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String(version.Current, version.GitCommit))
		return nil
	}

	cfg, err := config.GetConfig(v)
	if err != nil {
		return fmt.Errorf("couldn't load config: %w", err)
	}

	logFactory := logging.NewFactory(cfg.LoggingConfig)
	defer logFactory.Close()

	log, err := logFactory.Make("main")
	if err != nil {
		return fmt.Errorf("couldn't initialize log: %w", err)
	}

	// SIGHUP re-reads the log levels from the config file.
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	var eg errgroup.Group
	eg.Go(func() error {
		for range reload {
			reloadLogLevels(v, logFactory, log)
		}
		return nil
	})
	defer func() {
		signal.Stop(reload)
		close(reload)
		_ = eg.Wait()
	}()

	log.Info("starting",
		zap.Stringer("version", version.Current),
		zap.Stringer("strategy", cfg.Strategy),
		zap.Stringer("fold", cfg.Fold),
		zap.Uint64("windowSize", cfg.WindowSize),
	)

	meterFactory, err := meter.NewFactory(cfg.Strategy, cfg.Fold, nil)
	if err != nil {
		return err
	}
	m, err := meterFactory.New(cfg.WindowSize)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	m, err = meter.NewMeteredMeter(cfg.MetricsNamespace, registry, meter.NewSyncMeter(m))
	if err != nil {
		return fmt.Errorf("couldn't register meter metrics: %w", err)
	}

	d := driver.New(cfg.DriverConfig, log, m, registry, cmd.OutOrStdout())
	if exitCode := app.Run(d, log); exitCode != 0 {
		return fmt.Errorf("%w: %d", errExitCode, exitCode)
	}
	return nil
}

func reloadLogLevels(v *viper.Viper, logFactory logging.Factory, log logging.Logger) {
	logLevel, displayLevel, err := config.ReloadLogLevels(v)
	if err != nil {
		log.Warn("couldn't reload log levels", zap.Error(err))
		return
	}
	if err := logging.SetLevels(logFactory, logLevel, displayLevel); err != nil {
		log.Warn("couldn't set log levels", zap.Error(err))
		return
	}
	log.Info("reloaded log levels",
		zap.Stringer("logLevel", logLevel),
		zap.Stringer("displayLevel", displayLevel),
	)
}
