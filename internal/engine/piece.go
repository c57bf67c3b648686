package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Piece is a chess piece on a Board. The variants are *Pawn, *Knight,
// *Bishop, *Rook, *Queen and *King; each generates its own moves.
type Piece interface {
	Type() chess.PieceType
	Colour() chess.Colour
	Position() chess.Position
	HasMoved() bool

	// PotentialMoves returns the pseudo-legal moves of the piece.
	PotentialMoves(b *Board) *MoveSet
	// PinningMoves returns the squares the piece covers for protection and
	// the rays along which it pins an enemy piece.
	PinningMoves(b *Board) *MoveSet

	// Flags recomputed by every legality pass.
	IsProtected() bool
	IsUnderAttack() bool
	IsPinned() bool
	// AvailableMoves returns the potential moves cached by the last pass.
	AvailableMoves() *MoveSet

	String() string

	state() *pieceState
}

// pieceState holds the fields shared by every variant.
type pieceState struct {
	kind     chess.PieceType
	colour   chess.Colour
	position chess.Position
	moved    bool

	protected   bool
	underAttack bool
	pinned      bool
	potential   *MoveSet
}

func (s *pieceState) state() *pieceState { return s }

func (s *pieceState) Type() chess.PieceType    { return s.kind }
func (s *pieceState) Colour() chess.Colour     { return s.colour }
func (s *pieceState) Position() chess.Position { return s.position }
func (s *pieceState) HasMoved() bool           { return s.moved }
func (s *pieceState) IsProtected() bool        { return s.protected }
func (s *pieceState) IsUnderAttack() bool      { return s.underAttack }
func (s *pieceState) IsPinned() bool           { return s.pinned }

func (s *pieceState) AvailableMoves() *MoveSet {
	if s.potential == nil {
		return &MoveSet{}
	}
	return s.potential
}

// String returns a description such as "White Knight on g1".
func (s *pieceState) String() string {
	return fmt.Sprintf("%s %s on %s", s.colour, s.kind, s.position)
}

func (s *pieceState) resetFlags() {
	s.protected = false
	s.underAttack = false
	s.pinned = false
}

// Pawn moves forward and captures diagonally.
type Pawn struct{ pieceState }

// Knight jumps in an L shape.
type Knight struct{ pieceState }

// Bishop slides diagonally.
type Bishop struct{ pieceState }

// Rook slides along ranks and files.
type Rook struct{ pieceState }

// Queen slides in all eight directions.
type Queen struct{ pieceState }

// King steps one square in any direction and castles.
type King struct{ pieceState }

// NewPiece creates an unmoved piece of the given type. It returns nil for
// chess.NoPiece or an unknown type.
func NewPiece(t chess.PieceType, colour chess.Colour, pos chess.Position) Piece {
	s := pieceState{kind: t, colour: colour, position: pos}
	switch t {
	case chess.Pawn:
		return &Pawn{s}
	case chess.Knight:
		return &Knight{s}
	case chess.Bishop:
		return &Bishop{s}
	case chess.Rook:
		return &Rook{s}
	case chess.Queen:
		return &Queen{s}
	case chess.King:
		return &King{s}
	default:
		return nil
	}
}

var backRank = [chess.BoardSize]chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// StartingPieces returns the sixteen pieces of a colour on their initial
// squares: the back rank from the a-file to the h-file, then the pawns.
func StartingPieces(colour chess.Colour) []Piece {
	pieces := make([]Piece, 0, 2*chess.BoardSize)
	home := chess.HomeRank(colour)
	for i, t := range backRank {
		pieces = append(pieces, NewPiece(t, colour, chess.Pos(home, i+1)))
	}
	for file := 1; file <= chess.BoardSize; file++ {
		pieces = append(pieces, NewPiece(chess.Pawn, colour, chess.Pos(chess.PawnRank(colour), file)))
	}
	return pieces
}

// steppingMoves returns moves to each offset square that is empty or holds
// an enemy piece.
func steppingMoves(b *Board, p Piece, offsets [][2]int) *MoveSet {
	ms := &MoveSet{}
	for _, to := range stepTargets(p.Position(), offsets) {
		if !b.HasColourAt(to, p.Colour()) {
			ms.Add(NewMove(p, to))
		}
	}
	return ms
}

// coveredSquares returns moves to each offset square that does not hold an
// enemy piece: the squares a stepping piece defends or controls.
func coveredSquares(b *Board, p Piece, offsets [][2]int) *MoveSet {
	ms := &MoveSet{}
	for _, to := range stepTargets(p.Position(), offsets) {
		if !b.HasColourAt(to, p.Colour().Opposite()) {
			ms.Add(NewMove(p, to))
		}
	}
	return ms
}

// PotentialMoves returns the knight's pseudo-legal moves.
func (n *Knight) PotentialMoves(b *Board) *MoveSet {
	return steppingMoves(b, n, knightOffsets)
}

// PinningMoves returns the squares the knight covers.
func (n *Knight) PinningMoves(b *Board) *MoveSet {
	return coveredSquares(b, n, knightOffsets)
}

// PotentialMoves returns the bishop's pseudo-legal moves.
func (s *Bishop) PotentialMoves(b *Board) *MoveSet {
	return slidingMoves(b, s, diagonalDirections)
}

// PinningMoves returns the bishop's pin and protection rays.
func (s *Bishop) PinningMoves(b *Board) *MoveSet {
	return pinScan(b, s, diagonalDirections)
}

// PotentialMoves returns the rook's pseudo-legal moves.
func (s *Rook) PotentialMoves(b *Board) *MoveSet {
	return slidingMoves(b, s, cardinalDirections)
}

// PinningMoves returns the rook's pin and protection rays.
func (s *Rook) PinningMoves(b *Board) *MoveSet {
	return pinScan(b, s, cardinalDirections)
}

// PotentialMoves returns the queen's pseudo-legal moves.
func (s *Queen) PotentialMoves(b *Board) *MoveSet {
	return slidingMoves(b, s, allDirections)
}

// PinningMoves returns the queen's pin and protection rays.
func (s *Queen) PinningMoves(b *Board) *MoveSet {
	return pinScan(b, s, allDirections)
}
