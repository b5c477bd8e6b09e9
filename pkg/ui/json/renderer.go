// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/robe/pkg/errors"
)

// ErrorDocument is what scripts receive on stdout when a command fails
// with --output json
type ErrorDocument struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Renderer writes one indented JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	// Paths and file content are printed as they are
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult renders a command result as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error with its code and details
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(ErrorDocument{
		Error:   errors.UserMessage(err),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
