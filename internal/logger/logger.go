// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger provides the application's structured logger. Output goes to
// a log file next to the note store so stdout and stderr stay reserved for
// what the user asked to see.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file created inside the store directory.
const FileName = "heard.log"

var defaultLogger *slog.Logger

// ParseLevel maps a configured level name to a slog level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// openLogFile opens dir/heard.log for appending (0640: user rw, group r, others ---).
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}

// InitLogger points the default logger at the log file in dir.
// It should be called once, before any note operation runs. If the file
// cannot be opened a warning is printed and log records are dropped.
//
// The returned closer releases the log file; it is never nil.
func InitLogger(dir string, level slog.Level) io.Closer {
	file, err := openLogFile(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v. Logging disabled.\n", err)
		SetLogger(discardLogger())
		return io.NopCloser(nil)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)
	return file
}

// SetLogger replaces the default logger instance. Tests use it to capture
// records.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// checkLogger keeps calls made before InitLogger from panicking.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = discardLogger()
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
