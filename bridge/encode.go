package bridge

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// Format selects the encoding used by Encode.
type Format int

const (
	// FormatJSON encodes records as a JSON array.
	FormatJSON Format = iota

	// FormatYAML encodes records as a YAML sequence.
	FormatYAML
)

// String returns the canonical lower-case name of f.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a case-insensitive name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// EncodeOptions configures Encode.
//
// Indent – spaces per nesting level. 0 means compact JSON; YAML always
// indents and falls back to 2.
type EncodeOptions struct {
	Indent int
}

// EncodeOption represents a functional option for configuring Encode.
type EncodeOption func(*EncodeOptions)

// WithIndent sets the number of spaces per nesting level. Negative values
// are treated as 0.
func WithIndent(spaces int) EncodeOption {
	return func(o *EncodeOptions) {
		if spaces < 0 {
			spaces = 0
		}
		o.Indent = spaces
	}
}

// DefaultEncodeOptions returns compact output settings.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Indent: 0}
}

// Encode writes records to w in the given format, followed by a newline.
func Encode[V constraints.Ordered, W core.Weight](w io.Writer, records []dijkstra.Record[V, W], f Format, opts ...EncodeOption) error {
	cfg := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if records == nil {
		records = []dijkstra.Record[V, W]{}
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if cfg.Indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", cfg.Indent))
		}
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("bridge: encode json: %w", err)
		}

		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		indent := cfg.Indent
		if indent == 0 {
			indent = 2
		}
		enc.SetIndent(indent)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("bridge: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("bridge: encode yaml: %w", err)
		}

		return nil

	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
