package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveSet is a collection of moves together with the vectors that produced
// them. A nil *MoveSet reads as empty.
type MoveSet struct {
	moves   []*Move
	vectors []*Vector
}

// NewMoveSet creates a move set holding the given moves.
func NewMoveSet(moves ...*Move) *MoveSet {
	return &MoveSet{moves: moves}
}

// Add appends moves to the set.
func (s *MoveSet) Add(moves ...*Move) {
	s.moves = append(s.moves, moves...)
}

// AddVector appends a vector and every move it carries.
func (s *MoveSet) AddVector(v *Vector) {
	s.vectors = append(s.vectors, v)
	s.moves = append(s.moves, v.moves...)
}

// Combine merges the moves and vectors of others into s and returns s.
func (s *MoveSet) Combine(others ...*MoveSet) *MoveSet {
	for _, o := range others {
		if o == nil {
			continue
		}
		s.moves = append(s.moves, o.moves...)
		s.vectors = append(s.vectors, o.vectors...)
	}
	return s
}

// Filter returns a new set holding the moves for which keep returns true.
// The vectors are shared with s so that VectorFor keeps working.
func (s *MoveSet) Filter(keep func(*Move) bool) *MoveSet {
	out := &MoveSet{}
	if s == nil {
		return out
	}
	for _, m := range s.moves {
		if keep(m) {
			out.moves = append(out.moves, m)
		}
	}
	out.vectors = s.vectors
	return out
}

// Moves returns the moves in generation order.
func (s *MoveSet) Moves() []*Move {
	if s == nil {
		return nil
	}
	return slices.Clone(s.moves)
}

// Vectors returns the vectors in generation order.
func (s *MoveSet) Vectors() []*Vector {
	if s == nil {
		return nil
	}
	return slices.Clone(s.vectors)
}

// Len returns the number of moves.
func (s *MoveSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.moves)
}

// HasMove reports whether m itself is a member of the set.
func (s *MoveSet) HasMove(m *Move) bool {
	return s != nil && slices.Contains(s.moves, m)
}

// HasMoveTo reports whether any move lands on pos.
func (s *MoveSet) HasMoveTo(pos chess.Position) bool {
	if s == nil {
		return false
	}
	for _, m := range s.moves {
		if m.To == pos {
			return true
		}
	}
	return false
}

// MovesTo returns the moves landing on pos.
func (s *MoveSet) MovesTo(pos chess.Position) []*Move {
	if s == nil {
		return nil
	}
	var out []*Move
	for _, m := range s.moves {
		if m.To == pos {
			out = append(out, m)
		}
	}
	return out
}

// MovesFrom returns the moves starting on pos.
func (s *MoveSet) MovesFrom(pos chess.Position) []*Move {
	if s == nil {
		return nil
	}
	var out []*Move
	for _, m := range s.moves {
		if m.From == pos {
			out = append(out, m)
		}
	}
	return out
}

// VectorFor returns the vector of this set that generated m, or nil.
func (s *MoveSet) VectorFor(m *Move) *Vector {
	if s == nil || m.vector == nil {
		return nil
	}
	if slices.Contains(s.vectors, m.vector) {
		return m.vector
	}
	return nil
}

// Find returns the move from one square to another, or nil.
func (s *MoveSet) Find(from, to chess.Position) *Move {
	if s == nil {
		return nil
	}
	for _, m := range s.moves {
		if m.From == from && m.To == to {
			return m
		}
	}
	return nil
}

// Destinations returns the distinct destination squares in generation order.
func (s *MoveSet) Destinations() []chess.Position {
	if s == nil {
		return nil
	}
	var out []chess.Position
	for _, m := range s.moves {
		if !slices.Contains(out, m.To) {
			out = append(out, m.To)
		}
	}
	return out
}
