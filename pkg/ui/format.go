package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text output from the output stream
	FormatAuto Format = iota
	// FormatTerminal renders tables and icons with colors
	FormatTerminal
	// FormatText renders plain text without styling
	FormatText
	// FormatJSON renders machine-readable JSON
	FormatJSON
)

// FormatNames lists the accepted --format values
var FormatNames = []string{"auto", "term", "text", "json"}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a --format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("accepted", FormatNames)
	}
}

// DetectFormat picks terminal output for color-capable terminals and
// text output otherwise. NO_COLOR always selects text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
