package main

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/config"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(noColour, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != config.Events {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Events)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q; want empty", cfg.StartFEN)
	}
	if !cfg.Display.UseColour || !cfg.Display.ShowCheck || !cfg.Display.ShowBoard || !cfg.Display.Prompt {
		t.Errorf("Display = %+v; want everything on", *cfg.Display)
	}
}

func TestApplyFlags_Set(t *testing.T) {
	defer saveRestoreInt(verbosity, config.Scanning)()
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreBool(noColour, true)()
	defer saveRestoreBool(noCheck, true)()
	defer saveRestoreBool(noBoard, true)()
	defer saveRestoreBool(noPrompt, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != config.Scanning {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Scanning)
	}
	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.Display.UseColour || cfg.Display.ShowCheck || cfg.Display.ShowBoard || cfg.Display.Prompt {
		t.Errorf("Display = %+v; want everything off", *cfg.Display)
	}
}

func TestApplyFlags_BadVerbosityFailsValidation(t *testing.T) {
	defer saveRestoreInt(verbosity, 5)()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil; want error for verbosity 5")
	}
}
