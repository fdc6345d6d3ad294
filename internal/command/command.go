// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package command turns the raw process arguments into one note operation.
// The grammar is positional and uses a literal ":" token between the note
// text and its category, which is why it is not expressed as cobra flags.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator is the token that must sit between note text and category.
const Separator = ":"

// Usage lines shown when an invocation has the wrong shape.
const (
	AddUsage    = `Usage: heard "note text" : category`
	EditUsage   = `Usage: heard --edit INDEX "new text" : category`
	RemoveUsage = "Usage: heard --remove INDEX"
)

// Invocation is one of Add, List, Edit or Remove.
type Invocation interface {
	isInvocation()
}

// Add appends a note.
type Add struct {
	Text     string
	Category string
}

// List prints notes, restricted to Category when Filtered is set.
type List struct {
	Category string
	Filtered bool
}

// Edit replaces the note at the 0-based Index.
type Edit struct {
	Index    int
	Text     string
	Category string
}

// Remove deletes the note at the 0-based Index.
type Remove struct {
	Index int
}

func (Add) isInvocation()    {}
func (List) isInvocation()   {}
func (Edit) isInvocation()   {}
func (Remove) isInvocation() {}

// ErrUsage means no arguments were given; the full usage should be shown.
var ErrUsage = errors.New("no arguments given")

// UsageError reports an invocation with the wrong shape.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

// IndexError reports an INDEX argument that is not a positive integer.
type IndexError struct {
	Op    string // "edit" or "removal"
	Value string
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid index for %s: %q", e.Op, e.Value)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// Parse maps args (without the program name) to an Invocation.
//
// Shapes:
//
//	--list | -l [category]
//	--edit INDEX text : category
//	--remove | --r INDEX
//	text : category
//
// Extra trailing arguments are ignored.
func Parse(args []string) (Invocation, error) {
	if len(args) == 0 {
		return nil, ErrUsage
	}

	switch args[0] {
	case "--list", "-l":
		if len(args) > 1 {
			return List{Category: args[1], Filtered: true}, nil
		}
		return List{}, nil

	case "--edit":
		if len(args) < 5 || args[3] != Separator {
			return nil, &UsageError{Usage: EditUsage}
		}
		index, err := parseIndex("edit", args[1])
		if err != nil {
			return nil, err
		}
		return Edit{Index: index, Text: trimQuotes(args[2]), Category: args[4]}, nil

	case "--remove", "--r":
		if len(args) < 2 {
			return nil, &UsageError{Usage: RemoveUsage}
		}
		index, err := parseIndex("removal", args[1])
		if err != nil {
			return nil, err
		}
		return Remove{Index: index}, nil
	}

	if len(args) < 3 || args[1] != Separator {
		return nil, &UsageError{Usage: AddUsage}
	}
	return Add{Text: trimQuotes(args[0]), Category: args[2]}, nil
}

// parseIndex converts a 1-based INDEX argument to a 0-based index.
func parseIndex(op, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &IndexError{Op: op, Value: value, Err: err}
	}
	if n < 1 {
		return 0, &IndexError{Op: op, Value: value, Err: errors.New("index must be 1 or greater")}
	}
	return n - 1, nil
}

// trimQuotes strips double quotes a shell left around the note text.
func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}
