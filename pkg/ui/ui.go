// Package ui renders command results as styled terminal tables, plain text
// or JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/actionkit/pkg/ui/json"
	"github.com/arthur-debert/actionkit/pkg/ui/table"
	"github.com/arthur-debert/actionkit/pkg/ui/terminal"
	"github.com/arthur-debert/actionkit/pkg/ui/text"
)

// Tabular is implemented by results shown as a table
type Tabular = table.Tabular

// Styled is implemented by tables with a colored rendition
type Styled = table.Styled

// Renderer writes command results in one output format
type Renderer interface {
	// RenderResult renders a result. Tabular results become tables in
	// terminal and text output; JSON output encodes the value itself.
	RenderResult(result interface{}) error

	// RenderError renders an error
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format. FormatAuto inspects output
// when it is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
