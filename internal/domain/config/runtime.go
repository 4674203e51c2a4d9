package config

import (
	"time"
)

// OutputFormat selects how command results are printed
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	DataDir string

	// API session
	APIURL string
	Token  string

	// Context settings
	Profile        string
	OrganizationID string // active organization, empty if unset

	// Execution settings
	Debug          bool
	NonInteractive bool
	Output         OutputFormat
	Timeout        time.Duration
	MaxAttempts    int
	PageSize       int

	// Config source tracking
	ConfigSource string // path of govctl.toml, empty when none was loaded
}

// IsStructuredOutput reports whether output should be machine readable
func (c *RuntimeConfig) IsStructuredOutput() bool {
	return c.Output == OutputJSON || c.Output == OutputYAML
}
