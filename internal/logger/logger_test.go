// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitLoggerWritesToFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	dir := t.TempDir()
	closer := InitLogger(dir, slog.LevelInfo)
	Info("hello", "key", "value")
	Debug("hidden at info level")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestSetLoggerCapturesRecords(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Warn("careful")
	Error("failed", "attempts", 3)
	Debug("done")

	out := buf.String()
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "attempts=3")
	assert.Contains(t, out, "done")
}

func TestUninitialisedLoggerDoesNotPanic(t *testing.T) {
	SetLogger(nil)
	assert.NotPanics(t, func() {
		Info("nobody listening")
		Error("still nobody")
	})
}
