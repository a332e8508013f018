// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/actionkit/pkg/ui/table"
	"github.com/pterm/pterm"
)

// Renderer draws tables and messages with pterm
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders tabular results as a boxed table and anything else
// with its default format
func (r *Renderer) RenderResult(result interface{}) error {
	if t, ok := result.(table.Tabular); ok {
		out, err := pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(table.StyledData(t)).
			Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.output, out)
		return err
	}
	_, err := fmt.Fprintln(r.output, result)
	return err
}

// RenderError renders an error in red
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, pterm.Red("Error: ")+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Bold.Sprint(msg))
	return err
}
