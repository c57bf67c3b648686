// Package config provides configuration for the chess rules engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // nothing is logged
	Results    = 1 // terminal results
	Commentary = 2 // game start, every ply and every check
)

// Config holds all engine and program configuration.
// A Config is passed explicitly to every Game; there is no global instance.
type Config struct {
	// Verbosity controls how much is written to LogFile.
	Verbosity int

	// Rules holds optional rule detection settings.
	Rules RulesConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Results,
		Rules:      NewRulesConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("output file not set: %w", errors.ErrInvalidConfig)
	}
	if c.LogFile == nil {
		return fmt.Errorf("log file not set: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a log line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
