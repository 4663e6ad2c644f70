// Package output delivers report rows to their destinations: a writer such
// as standard output, an append-only log file, or syslog.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tonimelisma/dealcloud-activity/pkg/dealcloud"
	"gopkg.in/yaml.v3"
)

// Encodings understood by WriterSink.
const (
	FormatJSONLines = "jsonl"
	FormatJSON      = "json"
	FormatYAML      = "yaml"
)

// Sink receives the rows of one report run.
type Sink interface {
	Write(rows []dealcloud.ActivityRow) error
	Close() error
}

// WriterSink encodes rows onto an io.Writer.
type WriterSink struct {
	w      io.Writer
	format string
}

// NewWriterSink returns a sink that encodes rows in the given format.
func NewWriterSink(w io.Writer, format string) (*WriterSink, error) {
	switch format {
	case FormatJSONLines, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &WriterSink{w: w, format: format}, nil
}

func (s *WriterSink) Write(rows []dealcloud.ActivityRow) error {
	switch s.format {
	case FormatJSON:
		enc := json.NewEncoder(s.w)
		enc.SetIndent("", "  ")
		if rows == nil {
			rows = []dealcloud.ActivityRow{}
		}
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(s.w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding rows as yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeJSONLines(s.w, rows)
	}
}

// Close is a no-op; the writer belongs to the caller.
func (s *WriterSink) Close() error {
	return nil
}

// writeJSONLines writes one compact JSON object per line.
func writeJSONLines(w io.Writer, rows []dealcloud.ActivityRow) error {
	enc := json.NewEncoder(w)
	for i, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}
	}
	return nil
}

// MultiSink fans rows out to several sinks in order, stopping at the first
// failure.
type MultiSink []Sink

func (m MultiSink) Write(rows []dealcloud.ActivityRow) error {
	for _, s := range m {
		if err := s.Write(rows); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and reports all failures.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
