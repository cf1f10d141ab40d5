// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/termchess-go/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Display options
	noColour = flag.Bool("nocolour", false, "Draw the board without terminal colours")
	noCheck  = flag.Bool("nocheck", false, "Don't announce check after each move")
	noBoard  = flag.Bool("noboard", false, "Don't redraw the board after each move")
	noPrompt = flag.Bool("noprompt", false, "Don't print the turn prompt")

	// Diagnostics
	verbosity = flag.Int("v", config.Events, "Log verbosity: 0 silent, 1 game events, 2 move scans")
	logFile   = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append diagnostics to this file")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN
	applyDisplayFlags(cfg)
}

// applyDisplayFlags configures board and prompt output.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.UseColour = !*noColour
	cfg.Display.ShowCheck = !*noCheck
	cfg.Display.ShowBoard = !*noBoard
	cfg.Display.Prompt = !*noPrompt
}
