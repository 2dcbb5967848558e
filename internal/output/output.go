// Package output writes emitted paths in the supported formats.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how paths are written.
type Format string

const (
	// FormatLines writes one path per line.
	FormatLines Format = "lines"
	// FormatNull terminates each path with a NUL byte, like find -print0.
	FormatNull Format = "null"
	// FormatJSON writes a single JSON array.
	FormatJSON Format = "json"
	// FormatYAML writes a single YAML sequence.
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatLines, FormatNull, FormatJSON, FormatYAML}

// ParseFormat validates a format name. The empty string selects FormatLines.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatLines, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of lines, null, json, yaml)", s)
}

// Writer writes paths in emission order. Line and NUL output is streamed;
// JSON and YAML are buffered until Close, since they form a single document.
type Writer struct {
	format  Format
	w       *bufio.Writer
	pending []string
}

// NewWriter creates a Writer for format on w.
func NewWriter(w io.Writer, format Format) *Writer {
	if format == "" {
		format = FormatLines
	}
	return &Writer{
		format: format,
		w:      bufio.NewWriter(w),
	}
}

// Write emits a single path.
func (w *Writer) Write(path string) error {
	switch w.format {
	case FormatJSON, FormatYAML:
		w.pending = append(w.pending, path)
		return nil
	case FormatNull:
		if _, err := w.w.WriteString(path); err != nil {
			return err
		}
		return w.w.WriteByte(0)
	default:
		if _, err := w.w.WriteString(path); err != nil {
			return err
		}
		return w.w.WriteByte('\n')
	}
}

// Close writes any buffered document and flushes.
func (w *Writer) Close() error {
	switch w.format {
	case FormatJSON:
		paths := w.pending
		if paths == nil {
			paths = []string{}
		}
		enc := json.NewEncoder(w.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(paths); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		paths := w.pending
		if paths == nil {
			paths = []string{}
		}
		enc := yaml.NewEncoder(w.w)
		enc.SetIndent(2)
		if err := enc.Encode(paths); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	}
	return w.w.Flush()
}
