// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"heard/internal/note"
)

// Field names of a stored note. Decode accepts exactly these two keys.
const (
	textKey     = "text"
	categoryKey = "category"
)

// Encode renders notes as an indented JSON array with the fields of each
// note in the order text, category.
// Text that is not valid UTF-8 is refused rather than stored with
// replacement characters.
func Encode(notes []note.Note) ([]byte, error) {
	for i, n := range notes {
		if !utf8.ValidString(n.Text) || !utf8.ValidString(n.Category) {
			return nil, fmt.Errorf("failed to encode notes: note %d is not valid UTF-8", i+1)
		}
	}
	if notes == nil {
		notes = []note.Note{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(notes); err != nil {
		return nil, fmt.Errorf("failed to encode notes: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses data produced by Encode. Empty input decodes to no notes.
// Anything that is not exactly one array of complete note records, with
// keys spelled exactly "text" and "category", fails with an error wrapping
// note.ErrStoreCorrupt. So does input that is not valid UTF-8.
func Decode(data []byte) ([]note.Note, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []note.Note{}, nil
	}
	if !utf8.Valid(data) {
		return nil, corrupt(errors.New("store is not valid UTF-8"))
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	var records []map[string]json.RawMessage
	if err := dec.Decode(&records); err != nil {
		return nil, corrupt(err)
	}
	if records == nil {
		return nil, corrupt(errors.New("store holds null instead of a list"))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, corrupt(errors.New("unexpected data after the note list"))
	}

	notes := make([]note.Note, 0, len(records))
	for i, fields := range records {
		n, err := decodeNote(fields)
		if err != nil {
			return nil, corrupt(fmt.Errorf("note %d: %w", i+1, err))
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// decodeNote builds a note from one record. The json package matches struct
// fields case-insensitively, so keys are checked by hand.
func decodeNote(fields map[string]json.RawMessage) (note.Note, error) {
	if fields == nil {
		return note.Note{}, errors.New("record is null")
	}
	for key := range fields {
		if key != textKey && key != categoryKey {
			return note.Note{}, fmt.Errorf("unexpected field %q", key)
		}
	}

	var n note.Note
	var err error
	if n.Text, err = decodeString(fields, textKey); err != nil {
		return note.Note{}, err
	}
	if n.Category, err = decodeString(fields, categoryKey); err != nil {
		return note.Note{}, err
	}
	return n, nil
}

func decodeString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	if bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("field %q is null", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return s, nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: %w", note.ErrStoreCorrupt, err)
}
