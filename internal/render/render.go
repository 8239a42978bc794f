// Package render writes command results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Texter is a result with a human readable form.
type Texter interface {
	Text(precision int) string
}

// Renderer writes results to Out. Precision only applies to text output;
// JSON and YAML carry full float precision.
type Renderer struct {
	Out       io.Writer
	Format    string
	Precision int
}

// Render writes v in the configured format. An empty format is text.
func (r Renderer) Render(v Texter) error {
	switch r.Format {
	case "", FormatText:
		_, err := fmt.Fprintln(r.Out, v.Text(r.Precision))
		return err
	case FormatJSON:
		enc := json.NewEncoder(r.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.Out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", r.Format)
}
