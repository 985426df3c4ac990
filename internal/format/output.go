// Package format renders command output: a strict JSON envelope for
// scripts and styled text views for humans.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	Text = "text"
	JSON = "json"
)

// Valid reports whether the format name is supported.
func Valid(format string) bool {
	switch format {
	case "", Text, JSON:
		return true
	default:
		return false
	}
}

// Write writes v in the requested machine format.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", JSON:
		return WriteJSON(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands. Anything
// beyond the data itself belongs in sibling envelope fields, not in
// free-form text.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
