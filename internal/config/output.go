package config

import "git.home.luguber.info/inful/docnav/internal/foundation/normalization"

// OutputFormat selects the encoding of the generated result.
type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

var outputFormatNormalizer = normalization.NewNormalizer("output format", map[string]OutputFormat{
	"json": OutputFormatJSON,
	"yaml": OutputFormatYAML,
	"yml":  OutputFormatYAML,
}, OutputFormatJSON)

// ParseOutputFormat converts raw into an OutputFormat. Empty means JSON.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.Parse(raw)
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
	// File receives the result; empty writes to stdout.
	File string `yaml:"file"`
}
