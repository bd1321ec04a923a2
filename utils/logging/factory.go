// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/maps"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// SetLogLevel sets the file log level of the logger named [name]
	SetLogLevel(name string, level Level) error

	// SetDisplayLevel sets the display log level of the logger named [name]
	SetDisplayLevel(name string, level Level) error

	// GetLoggerNames returns the names of all logs created by this factory
	GetLoggerNames() []string

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

type logWrapper struct {
	logger       Logger
	displayLevel zap.AtomicLevel
	// Only set if the logger writes to a file
	fileLevel *zap.AtomicLevel
}

type factory struct {
	config Config
	lock   sync.RWMutex

	// For each logger created by this factory:
	// Logger name --> the logger.
	loggers map[string]logWrapper
}

// NewFactory returns a new instance of a Factory producing loggers configured
// with the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return &factory{
		config:  config,
		loggers: make(map[string]logWrapper),
	}
}

// Assumes [f.lock] is held
func (f *factory) makeLogger(name string) (Logger, error) {
	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", name)
	}

	var displayWriter io.WriteCloser = os.Stdout
	if f.config.DisableWriterDisplaying {
		displayWriter = Discard
	}
	consoleCore := NewWrappedCore(f.config.DisplayLevel, nopCloser{displayWriter}, f.config.DisplayHighlight.ConsoleEncoder())
	consoleCore.WriterDisabled = f.config.DisableWriterDisplaying

	cores := []WrappedCore{consoleCore}
	wrapper := logWrapper{
		displayLevel: consoleCore.AtomicLevel,
	}

	if f.config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(f.config.Directory, name+".log"),
			MaxSize:    f.config.MaxSize,
			MaxAge:     f.config.MaxAge,
			MaxBackups: f.config.MaxFiles,
			Compress:   f.config.Compress,
		}
		fileCore := NewWrappedCore(f.config.LogLevel, rw, JSONEncoder())
		cores = append(cores, fileCore)
		wrapper.fileLevel = &fileCore.AtomicLevel
	}

	l := NewLogger(name, cores...)
	wrapper.logger = l
	f.loggers[name] = wrapper
	return l, nil
}

func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.makeLogger(name)
}

func (f *factory) SetLogLevel(name string, level Level) error {
	f.lock.RLock()
	defer f.lock.RUnlock()

	logger, ok := f.loggers[name]
	if !ok {
		return fmt.Errorf("logger with name %q not found", name)
	}
	if logger.fileLevel != nil {
		logger.fileLevel.SetLevel(zapcore.Level(level))
	}
	return nil
}

func (f *factory) SetDisplayLevel(name string, level Level) error {
	f.lock.RLock()
	defer f.lock.RUnlock()

	logger, ok := f.loggers[name]
	if !ok {
		return fmt.Errorf("logger with name %q not found", name)
	}
	logger.displayLevel.SetLevel(zapcore.Level(level))
	return nil
}

func (f *factory) GetLoggerNames() []string {
	f.lock.RLock()
	defer f.lock.RUnlock()

	return maps.Keys(f.loggers)
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, lw := range f.loggers {
		lw.logger.Stop()
	}
	f.loggers = nil
}

// SetLevels sets the file and display levels of every logger created by
// [factory].
func SetLevels(factory Factory, logLevel, displayLevel Level) error {
	for _, name := range factory.GetLoggerNames() {
		if err := factory.SetLogLevel(name, logLevel); err != nil {
			return err
		}
		if err := factory.SetDisplayLevel(name, displayLevel); err != nil {
			return err
		}
	}
	return nil
}

// nopCloser keeps the process' stdout open when a logger is stopped.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
