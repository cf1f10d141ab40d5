// Package config provides configuration for termchess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent   = 0 // nothing
	Events   = 1 // game start, committed and undone moves, check, mate
	Scanning = 2 // also rejected moves and trial-scan consistency checks
)

// Config holds all program configuration.
type Config struct {
	// Verbosity selects how much is written to LogFile (see Silent, Events, Scanning).
	Verbosity int

	// StartFEN is the position to start from; empty means the standard position.
	StartFEN string

	// Display settings for the board and prompts.
	Display *DisplayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Events,
		Display:    NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Scanning {
		return fmt.Errorf("verbosity %d not in %d..%d: %w", c.Verbosity, Silent, Scanning, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	if c.Display == nil {
		return fmt.Errorf("no display settings: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile if the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
