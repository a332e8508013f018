// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/actionkit/pkg/ui/table"
	"github.com/pterm/pterm"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders tabular results as aligned columns and anything
// else with its default format
func (r *Renderer) RenderResult(result interface{}) error {
	if t, ok := result.(table.Tabular); ok {
		out, err := pterm.DefaultTable.
			WithHasHeader().
			WithSeparator("  ").
			WithData(table.Data(t)).
			Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.output, pterm.RemoveColorFromString(out))
		return err
	}
	_, err := fmt.Fprintln(r.output, result)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
