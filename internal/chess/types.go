// Package chess provides the value types shared by the rules engine and its adapters.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType identifies one of the six chess piece variants.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter used for a piece type.
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSlider reports whether the piece moves along rays.
func (p PieceType) IsSlider() bool {
	return p == Bishop || p == Rook || p == Queen
}

// Status is the game status of a player, recomputed at the start of each turn.
type Status int

const (
	NoStatus Status = iota
	Checked
	Checkmated
	Stalemated
	Drawn
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checked:
		return "checked"
	case Checkmated:
		return "checkmated"
	case Stalemated:
		return "stalemated"
	case Drawn:
		return "drawn"
	default:
		return "none"
	}
}

// IsTerminal reports whether the status ends the game.
func (s Status) IsTerminal() bool {
	return s == Checkmated || s == Stalemated || s == Drawn
}

// Board dimensions and castling files.
const (
	BoardSize = 8

	QueensideRookFile = 1
	KingFile          = 5
	KingsideRookFile  = BoardSize
)

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize
}

// PawnRank returns the rank the pawns of a colour start on.
func PawnRank(colour Colour) int {
	return HomeRank(colour) + ColourOffset(colour)
}

// PromotionRank returns the rank on which pawns of a colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
