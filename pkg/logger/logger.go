// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	LogContainer     logContainer
	loggerInit       sync.Once
	simpleLoggerInit sync.Once
)

// Options configures the logger. It must be set before the first call to
// GetLogger or GetSimpleLogger.
type Options struct {
	// Console receives human readable output. Defaults to os.Stderr,
	// stdout is reserved for generated tables.
	Console io.Writer
	// File, if set, additionally receives JSON lines.
	File  string
	Fs    afero.Fs
	Debug bool
}

type logContainer struct {
	opts         Options
	file         afero.File
	logger       *zap.Logger
	simpleLogger *zap.SugaredLogger
}

// Configure sets the options used when the logger is created.
func (l *logContainer) Configure(o Options) {
	l.opts = o
}

// GetLogger returns the pointer to the logger and creates one if none exists
func (l *logContainer) GetLogger() *zap.Logger {
	loggerInit.Do(func() {
		l.logger = zap.New(l.getCombinedCore())
	})
	return l.logger
}

// GetSimpleLogger returns the pointer to the sugared logger and creates one
// if none exists
func (l *logContainer) GetSimpleLogger() *zap.SugaredLogger {
	simpleLoggerInit.Do(func() {
		l.simpleLogger = l.GetLogger().Sugar()
	})
	return l.simpleLogger
}

// Close flushes buffered entries and closes the log file, if any.
func (l *logContainer) Close() error {
	if l.logger != nil {
		// Sync on a console fd fails on some platforms; nothing to do about it.
		_ = l.logger.Sync()
	}
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// String mirrors zap.String
func (l *logContainer) String(key string, val string) zap.Field {
	return zap.String(key, val)
}

// Int mirrors zap.Int
func (l *logContainer) Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

func (l *logContainer) level() zapcore.Level {
	if l.opts.Debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func getConsoleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getJsonEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.EpochTimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func (l *logContainer) getConsoleCore() zapcore.Core {
	w := l.opts.Console
	if w == nil {
		w = os.Stderr
	}
	return zapcore.NewCore(getConsoleEncoder(), zapcore.AddSync(w), l.level())
}

func (l *logContainer) getJsonCore() (zapcore.Core, error) {
	fs := l.opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	f, err := fs.OpenFile(l.opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	l.file = f
	return zapcore.NewCore(getJsonEncoder(), zapcore.AddSync(f), l.level()), nil
}

func (l *logContainer) getCombinedCore() zapcore.Core {
	console := l.getConsoleCore()
	if l.opts.File == "" {
		return console
	}
	j, err := l.getJsonCore()
	if err != nil {
		// The console still works, report there and carry on.
		zap.New(console).Sugar().Errorf("Unable to open log file %s: %v", l.opts.File, err)
		return console
	}
	return zapcore.NewTee(console, j)
}
