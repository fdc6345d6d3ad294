// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"heard/internal/config"
	"heard/internal/logger"
	"heard/internal/note"
	"heard/internal/store"
	"heard/internal/ui"

	"github.com/fatih/color"
)

// environment is everything resolved once per invocation before a note
// operation runs.
type environment struct {
	storePath string
	service   *note.Service
	logFile   io.Closer
}

func (e *environment) Close() error {
	return e.logFile.Close()
}

// setup creates home/.heard, reads its optional config.yaml, starts the
// log file and opens the note store. Any error here is fatal.
func setup(home string) (*environment, error) {
	storePath, err := store.Locate(home)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(storePath)

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	if cfg.StoreFile != "" {
		storePath = config.ResolvePath(cfg.StoreFile, home)
		if err := store.EnsureDir(storePath); err != nil {
			return nil, err
		}
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level in %s: %w", config.Path(dir), err)
	}
	logFile := logger.InitLogger(dir, level)
	applyColor(cfg.Color)

	logger.Debug("Resolved note store.", "path", storePath)

	return &environment{
		storePath: storePath,
		service:   note.NewService(store.New(storePath)),
		logFile:   logFile,
	}, nil
}

// applyColor overrides terminal detection for both fatih/color and lipgloss.
func applyColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
		ui.SetColor(true)
	case config.ColorNever:
		color.NoColor = true
		ui.SetColor(false)
	}
}
