package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// OutcomeKind tags the result of a legality pass.
type OutcomeKind int

const (
	Normal OutcomeKind = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "normal"
	}
}

// Outcome is the result of Board.CalculateMoves for the side to move.
type Outcome struct {
	Kind OutcomeKind
	// Moves is the authoritative legal move set; empty for terminal outcomes.
	Moves *MoveSet
	// Checks holds the enemy moves attacking the King.
	Checks []*Move
}

// Status maps the outcome to the mover's player status.
func (o Outcome) Status() chess.Status {
	switch o.Kind {
	case Check:
		return chess.Checked
	case Checkmate:
		return chess.Checkmated
	case Stalemate:
		return chess.Stalemated
	default:
		return chess.NoStatus
	}
}

// IsTerminal reports whether the outcome ends the game.
func (o Outcome) IsTerminal() bool {
	return o.Kind == Checkmate || o.Kind == Stalemate
}
