package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/govctl/internal/domain/config"
	"gopkg.in/yaml.v3"
)

type Renderer[T any] interface {
	Render(result T) error
}

// StructuredRenderer prints results as JSON or YAML for scripting
type StructuredRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewStructuredRenderer creates a renderer for the given machine-readable format
func NewStructuredRenderer(out io.Writer, format config.OutputFormat) *StructuredRenderer {
	return &StructuredRenderer{out: out, format: format}
}

// Render encodes v in the configured format
func (r *StructuredRenderer) Render(v any) error {
	switch r.format {
	case config.OutputJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format: %s", r.format)
	}
}
