package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// VectorKind classifies what a vector encodes.
type VectorKind int

const (
	// MoveVector is a ray of squares a slider can move to.
	MoveVector VectorKind = iota
	// PinVector runs from a slider through an enemy piece to that piece's King.
	PinVector
	// ProtectionVector runs from a slider to a friendly piece it defends.
	ProtectionVector
)

// String returns the string representation of a vector kind.
func (k VectorKind) String() string {
	switch k {
	case PinVector:
		return "pin"
	case ProtectionVector:
		return "protection"
	default:
		return "move"
	}
}

// Vector is the ordered ray of squares walked from a sliding piece in one
// direction, together with the moves generated along it.
type Vector struct {
	Direction Direction
	Kind      VectorKind
	moves     []*Move
}

func newVector(d Direction, kind VectorKind, moves []*Move) *Vector {
	v := &Vector{Direction: d, Kind: kind, moves: moves}
	for _, m := range moves {
		m.vector = v
	}
	return v
}

// Moves returns the moves along the vector, nearest square first.
func (v *Vector) Moves() []*Move {
	return v.moves
}

// Positions returns the squares along the vector, nearest first.
func (v *Vector) Positions() []chess.Position {
	positions := make([]chess.Position, len(v.moves))
	for i, m := range v.moves {
		positions[i] = m.To
	}
	return positions
}

// Contains reports whether the vector passes through pos.
func (v *Vector) Contains(pos chess.Position) bool {
	for _, m := range v.moves {
		if m.To == pos {
			return true
		}
	}
	return false
}

// Len returns the number of squares on the vector.
func (v *Vector) Len() int {
	return len(v.moves)
}
