// Copyright (c) 2025 SysMonitor authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package logging builds the zap loggers behind the monitor's log file.
// Records are plain text lines:
//
//	2025-01-02 15:04:05 - INFO - CPU: 12.34% | ...
//
// Writes to the log file are best effort: the file is opened, appended and
// closed per record, and a failed append is reported on stderr while the
// process keeps running.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns two loggers for the given log file.
//
// logger writes to the file, plus stdout when verbose is set; it carries all
// regular records. echo writes to both the file and stdout unconditionally and
// is reserved for lines that must reach the console regardless of verbosity.
func New(path string, verbose bool) (logger, echo *zap.Logger) {
	enc := zapcore.NewConsoleEncoder(encoderConfig())

	fileCore := zapcore.NewCore(enc, appendSyncer{path: path}, zapcore.InfoLevel)
	consoleCore := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zapcore.InfoLevel)

	if verbose {
		logger = zap.New(zapcore.NewTee(fileCore, consoleCore))
	} else {
		logger = zap.New(fileCore)
	}
	echo = zap.New(zapcore.NewTee(fileCore, consoleCore))
	return logger, echo
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		TimeKey:          "ts",
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
		LineEnding:       zapcore.DefaultLineEnding,
	}
}

// appendSyncer appends each record to the log file with an
// open-append-close cycle, creating the file (and its directory) if absent.
// Failures are written to stderr and the record is dropped; the syncer never
// returns an error so the caller keeps running.
type appendSyncer struct {
	path string
}

func (s appendSyncer) Write(p []byte) (int, error) {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return len(p), nil
	}
	defer f.Close()

	if _, err := f.Write(p); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write to log file: %v\n", err)
	}
	return len(p), nil
}

func (s appendSyncer) Sync() error { return nil }
