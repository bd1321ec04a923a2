// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/ratemeter/utils/logging"
)

type App interface {
	// Start kicks off the application and returns immediately
	Start() error

	// Stop notifies the application to exit and returns immediately
	Stop() error

	// ExitCode should only be called after [Start] returns with no error. It
	// should block until the application finishes
	ExitCode() (int, error)
}

// Run starts [app], stops it on SIGINT or SIGTERM and returns the exit code it
// should report.
func Run(app App, log logging.Logger) int {
	// start running the application
	if err := app.Start(); err != nil {
		log.Error("failed to start", zap.Error(err))
		return 1
	}

	// register signals to kill the application
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	// start up a new go routine to handle attempts to kill the application
	var eg errgroup.Group
	eg.Go(func() error {
		for sig := range signals {
			log.Info("received signal, stopping", zap.Stringer("signal", sig))
			return app.Stop()
		}
		return nil
	})

	// wait for the app to exit and get the exit code response
	exitCode, err := app.ExitCode()

	// shut down the signal go routine
	signal.Stop(signals)
	close(signals)

	// if there was an error closing the application, report that error
	if err := eg.Wait(); err != nil {
		log.Error("failed to stop", zap.Error(err))
		return 1
	}

	// if there was an error running the application, report that error
	if err != nil {
		log.Error("failed to run", zap.Error(err))
		return 1
	}

	// return the exit code that the application reported
	return exitCode
}
