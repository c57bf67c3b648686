// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position options
	layoutText  = flag.String("layout", "", "Start from a piece placement diagram instead of the initial position")
	blackToMove = flag.Bool("black", false, "Black moves first")
	movesText   = flag.String("moves", "", "Moves to replay in coordinate notation (e.g., 'e2e4 e7e5')")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Log file (default: stderr)")
	showLegal  = flag.Bool("legal", false, "List the legal moves of the side to move")
	verbosity  = flag.Int("v", config.Results, "Verbosity: 0 silent, 1 results, 2 commentary")

	// Rule options
	noMaterialDraw = flag.Bool("nomaterialdraw", false, "Don't end games on insufficient material")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.Rules.DetectInsufficientMaterial = !*noMaterialDraw
}
