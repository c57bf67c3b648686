package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for converting between positions and square names.
const (
	RankBase = '1'
	FileBase = 'a'
)

// Position is a board coordinate. Ranks and files both run from 1 to BoardSize;
// rank 1 is White's home rank and file 1 is the a-file.
type Position struct {
	Rank int
	File int
}

// Pos creates a position.
func Pos(rank, file int) Position {
	return Position{Rank: rank, File: file}
}

// IsValid reports whether the position lies on the board.
func (p Position) IsValid() bool {
	return p.Rank >= 1 && p.Rank <= BoardSize && p.File >= 1 && p.File <= BoardSize
}

// Offset returns the position shifted by the given rank and file deltas.
// The result may lie off the board.
func (p Position) Offset(dRank, dFile int) Position {
	return Position{Rank: p.Rank + dRank, File: p.File + dFile}
}

// Equals reports whether two positions name the same square.
func (p Position) Equals(o Position) bool {
	return p == o
}

// IsLight reports whether the square is a light square.
func (p Position) IsLight() bool {
	return (p.Rank+p.File)%2 == 1
}

// String returns the square name, e.g. "e4", or "??" for off-board positions.
func (p Position) String() string {
	if !p.IsValid() {
		return "??"
	}
	return fmt.Sprintf("%c%c", FileBase+p.File-1, RankBase+p.Rank-1)
}

// ParseSquare converts a square name such as "e4" into a position.
func ParseSquare(name string) (Position, error) {
	if len(name) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidPosition)
	}
	p := Position{
		Rank: int(name[1]) - RankBase + 1,
		File: int(name[0]) - FileBase + 1,
	}
	if !p.IsValid() {
		return Position{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidPosition)
	}
	return p, nil
}
