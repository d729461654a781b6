package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SchemasPath string // directory or single .hcl manifest file

	// TypeName selects a record type to instantiate and project. Empty
	// means describe every registered type instead.
	TypeName  string
	Recursive bool
	Flatten   bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SchemasPath == "" {
		return nil, errors.New("SchemasPath is a required configuration field and cannot be empty")
	}
	if cfg.Flatten && !cfg.Recursive {
		return nil, errors.New("flatten is only meaningful combined with recursive projection")
	}
	return &cfg, nil
}
