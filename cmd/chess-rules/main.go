// chess-rules replays moves in coordinate notation and reports the resulting
// position, its status and the legal moves of the side to move.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := newGame(cfg, *layoutText, *blackToMove)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up position: %v\n", err)
		os.Exit(1)
	}

	replayErr := replayMoves(g, *movesText)
	writeReport(cfg.OutputFile, g, *showLegal)
	if replayErr != nil {
		fmt.Fprintf(os.Stderr, "Error replaying moves: %v\n", replayErr)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// newGame starts a game from the initial position or the given layout.
func newGame(cfg *config.Config, layout string, black bool) (*game.Game, error) {
	if layout == "" && !black {
		return game.Start(cfg), nil
	}
	if layout == "" {
		layout = engine.InitialLayout
	}
	toMove := chess.White
	if black {
		toMove = chess.Black
	}
	return game.NewFromLayout(cfg, layout, toMove)
}

// replayMoves plays each whitespace-separated move in turn, stopping at the
// first one that is rejected.
func replayMoves(g *game.Game, text string) error {
	for _, token := range strings.Fields(text) {
		from, to, err := parseMoveText(token)
		if err != nil {
			return err
		}
		if err := g.Move(from, to); err != nil {
			return err
		}
	}
	return nil
}

// parseMoveText splits a move such as "e2e4" or "e7e8q" into its squares.
// Promotion is always to a Queen, so the only accepted suffix is q.
func parseMoveText(token string) (from, to chess.Position, err error) {
	switch {
	case len(token) == 5 && (token[4] == 'q' || token[4] == 'Q'):
		token = token[:4]
	case len(token) != 4:
		return from, to, errors.Wrapf(errors.ErrIllegalMove, "move %q", token)
	}

	if from, err = chess.ParseSquare(token[:2]); err != nil {
		return from, to, err
	}
	if to, err = chess.ParseSquare(token[2:]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// writeReport prints the placement, the status line and optionally the legal moves.
func writeReport(w io.Writer, g *game.Game, legal bool) {
	fmt.Fprintln(w, g.Board().Layout())
	fmt.Fprintln(w, describeStatus(g))

	if !legal {
		return
	}
	moves := g.LegalMoves().Moves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	sort.Strings(names)
	fmt.Fprintf(w, "%d legal move(s): %s\n", len(names), strings.Join(names, " "))
}

// describeStatus summarises the state of the side to move.
func describeStatus(g *game.Game) string {
	turn := g.Turn()
	switch g.CurrentPlayer().Status() {
	case chess.Checkmated:
		return fmt.Sprintf("%s is checkmated, %s wins", turn, turn.Opposite())
	case chess.Stalemated:
		return fmt.Sprintf("%s is stalemated, draw", turn)
	case chess.Drawn:
		return "insufficient material, draw"
	case chess.Checked:
		return fmt.Sprintf("%s to move, in check", turn)
	default:
		return fmt.Sprintf("%s to move", turn)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays moves and reports the position and its legal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are given as source and destination squares (e2e4).\n")
	fmt.Fprintf(os.Stderr, "Castling is the King's two-square move (e1g1); promotion is to a Queen (e7e8 or e7e8q).\n")
}
