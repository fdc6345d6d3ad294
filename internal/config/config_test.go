// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestSaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".heard")
	want := Config{StoreFile: "~/notes/heard.json", LogLevel: "debug", Color: ColorNever}

	require.NoError(t, SaveConfig(dir, want))

	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	body := "store_file: /srv/notes.json\nlog_level: warn\ncolor: always\n"
	require.NoError(t, os.WriteFile(Path(dir), []byte(body), 0640))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, Config{StoreFile: "/srv/notes.json", LogLevel: "warn", Color: ColorAlways}, cfg)
}

func TestLoadConfigRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not yaml", "store_file: [unclosed"},
		{"relative store file", "store_file: notes.json"},
		{"unknown log level", "log_level: chatty"},
		{"unknown color", "color: sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(Path(dir), []byte(tt.body), 0640))

			_, err := LoadConfig(dir)
			assert.Error(t, err)
		})
	}
}

func TestResolvePath(t *testing.T) {
	home := filepath.Join("/home", "someone")

	assert.Equal(t, filepath.Join(home, "notes", "n.json"), ResolvePath("~/notes/n.json", home))
	assert.Equal(t, "/abs/n.json", ResolvePath("/abs/n.json", home))
	assert.Equal(t, "~user/n.json", ResolvePath("~user/n.json", home))
}
