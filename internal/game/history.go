package game

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Record is one executed ply.
type Record struct {
	Ply      int
	Colour   chess.Colour
	Entry    engine.HistoryEntry
	Kind     engine.MoveKind
	Captured chess.PieceType // chess.NoPiece when nothing was taken
}

// From returns the origin square of the ply.
func (r Record) From() chess.Position {
	return chess.Pos(r.Entry.FromRank, r.Entry.FromFile)
}

// To returns the destination square of the ply.
func (r Record) To() chess.Position {
	return chess.Pos(r.Entry.ToRank, r.Entry.ToFile)
}

// String returns a line such as "3. White Knight g1f3".
func (r Record) String() string {
	s := fmt.Sprintf("%d. %s %s %s%s", r.Ply, r.Colour, r.Entry.Piece, r.From(), r.To())
	if r.Kind != engine.NormalMove {
		s += fmt.Sprintf(" (%s)", r.Kind)
	}
	if r.Captured != chess.NoPiece {
		s += fmt.Sprintf(" takes %s", r.Captured)
	}
	return s
}
