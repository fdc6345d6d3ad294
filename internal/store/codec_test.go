// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package store

import (
	"testing"

	"heard/internal/note"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	data, err := Encode([]note.Note{{Text: "Buy milk", Category: "shopping"}})
	require.NoError(t, err)

	want := "[\n  {\n    \"text\": \"Buy milk\",\n    \"category\": \"shopping\"\n  }\n]"
	assert.Equal(t, want, string(data))
}

func TestEncodeEmpty(t *testing.T) {
	for _, notes := range [][]note.Note{nil, {}} {
		data, err := Encode(notes)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	data, err := Encode([]note.Note{{Text: "a < b && c > d", Category: "x"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "a < b && c > d")
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		notes []note.Note
	}{
		{"empty", []note.Note{}},
		{"single", []note.Note{{Text: "Buy milk", Category: "shopping"}}},
		{"unicode", []note.Note{{Text: "Café ☕ — 日本語", Category: "personal"}, {Text: "🛍️", Category: "ünïcödé"}}},
		{"empty category", []note.Note{{Text: "no label", Category: ""}}},
		{"quotes and newlines", []note.Note{{Text: "say \"hi\"\nthen leave", Category: "work"}}},
		{"escapes and control characters", []note.Note{{Text: "tab\tback\\slash \u0001 \u2028", Category: "c"}}},
		{"order kept", []note.Note{{Text: "3", Category: "c"}, {Text: "1", Category: "a"}, {Text: "2", Category: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.notes)
			require.NoError(t, err)

			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.notes, got)
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		got, err := Decode([]byte(input))
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestDecodeRejectsNonConformingInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"garbage bytes", "\x00\xff\xfe not json"},
		{"null", "null"},
		{"object instead of list", `{"text":"a","category":"b"}`},
		{"truncated", `[{"text":"a","category":"b"}`},
		{"trailing data", `[] []`},
		{"missing category", `[{"text":"a"}]`},
		{"missing text", `[{"category":"b"}]`},
		{"null element", `[null]`},
		{"unknown field", `[{"text":"a","category":"b","id":1}]`},
		{"wrong type", `[{"text":1,"category":"b"}]`},
		{"list of strings", `["a","b"]`},
		{"upper case keys", `[{"TEXT":"a","Category":"b"}]`},
		{"mixed case key", `[{"Text":"a","category":"b"}]`},
		{"null text", `[{"text":null,"category":"b"}]`},
		{"invalid utf-8 in text", "[{\"text\":\"a\xff\",\"category\":\"b\"}]"},
		{"latin-1 bytes", "[{\"text\":\"caf\xe9\",\"category\":\"b\"}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, note.ErrStoreCorrupt)
			assert.Nil(t, got)
		})
	}
}

func TestEncodeRejectsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		notes []note.Note
	}{
		{"text", []note.Note{{Text: "caf\xe9", Category: "personal"}}},
		{"category", []note.Note{{Text: "ok", Category: "\xff"}}},
		{"later note", []note.Note{{Text: "ok", Category: "ok"}, {Text: "bad\xc3", Category: "ok"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.notes)
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}
