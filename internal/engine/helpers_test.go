package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// mustLayout builds a board from a placement diagram or fails the test.
func mustLayout(t testing.TB, layout string) *Board {
	t.Helper()
	b, err := NewBoardFromLayout(layout)
	if err != nil {
		t.Fatalf("NewBoardFromLayout(%q) error = %v", layout, err)
	}
	return b
}

// moveStrings returns the sorted coordinate form of every move in set.
func moveStrings(set *MoveSet) []string {
	var out []string
	for _, m := range set.Moves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// destinationsFrom returns the destinations of the moves in set leaving from.
func destinationsFrom(set *MoveSet, from string) []chess.Position {
	var out []chess.Position
	for _, m := range set.MovesFrom(testutil.Sq(from)) {
		out = append(out, m.To)
	}
	return out
}

// singlePiece places one piece on an otherwise empty board.
func singlePiece(t testing.TB, pt chess.PieceType, colour chess.Colour, square string) (*Board, Piece) {
	t.Helper()
	b := NewBoard()
	p := NewPiece(pt, colour, testutil.Sq(square))
	if err := b.AddPieces(p); err != nil {
		t.Fatalf("AddPieces() error = %v", err)
	}
	return b, p
}
