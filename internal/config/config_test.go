package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/termchess-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Events {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Events)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout/stderr")
	}
	if !cfg.Display.UseColour {
		t.Error("UseColour should be true by default")
	}
	if !cfg.Display.ShowCheck {
		t.Error("ShowCheck should be true by default")
	}
	if !cfg.Display.Prompt {
		t.Error("Prompt should be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = Silent }, false},
		{"scanning", func(c *Config) { c.Verbosity = Scanning }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"no output", func(c *Config) { c.OutputFile = nil }, true},
		{"no display", func(c *Config) { c.Display = nil }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(Events).Build()

	cfg.Logf(Events, "move %d", 1)
	cfg.Logf(Scanning, "hidden %d", 2)

	if got, want := buf.String(), "move 1\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}

	cfg.LogFile = nil
	cfg.Logf(Silent, "no writer") // must not panic
}

func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithOutput(&out).
		WithVerbosity(Scanning).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithColour(false).
		WithPrompt(false).
		ShowCheck(false).
		ShowBoard(false).
		Build()

	if cfg.OutputFile != &out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != Scanning {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Scanning)
	}
	if cfg.StartFEN == "" {
		t.Error("WithStartFEN did not set StartFEN")
	}
	d := cfg.Display
	if d.UseColour || d.Prompt || d.ShowCheck || d.ShowBoard {
		t.Errorf("Display = %+v, want all false", *d)
	}
}
