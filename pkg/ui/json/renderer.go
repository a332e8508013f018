// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/actionkit/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderResult encodes result as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes an error with its code and details
func (r *Renderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

// RenderMessage encodes a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
