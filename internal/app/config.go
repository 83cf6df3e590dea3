package app

import "errors"

// Output formats for the composed workflow.
const (
	FormatMermaid = "mermaid"
	FormatJSON    = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl manifest file or directory

	OutputFormat string
	LogFormat    string
	LogLevel     string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = FormatMermaid
	}
	if cfg.OutputFormat != FormatMermaid && cfg.OutputFormat != FormatJSON {
		return nil, errors.New("OutputFormat must be 'mermaid' or 'json'")
	}
	return &cfg, nil
}
