// Package engine implements the chess rules: move generation, the analytic
// legality pass with check, pin and protection resolution, and move execution.
package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is the 8x8 grid of squares, the registry of live pieces, the armed
// en passant target, and the move sets published by the last legality passes.
// A Board is not safe for concurrent use.
type Board struct {
	squares [chess.BoardSize][chess.BoardSize]Piece
	pieces  []Piece

	enPassant    chess.Position
	hasEnPassant bool

	// Per colour: the last legal set, and the potential and pinning sets
	// used as that colour's threat map.
	legal   [2]*MoveSet
	attacks [2]*MoveSet
	pins    [2]*MoveSet
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board holding both sides' starting pieces.
func NewStandardBoard() *Board {
	b := NewBoard()
	// Starting squares are distinct and on the board.
	_ = b.AddPieces(StartingPieces(chess.White)...)
	_ = b.AddPieces(StartingPieces(chess.Black)...)
	return b
}

// AddPieces places pieces on their squares. Either every piece is placed or,
// on error, none is.
func (b *Board) AddPieces(pieces ...Piece) error {
	seen := make(map[chess.Position]bool, len(pieces))
	for _, p := range pieces {
		pos := p.Position()
		if !pos.IsValid() {
			return errors.Wrapf(errors.ErrInvalidPosition, "adding %s", p)
		}
		if b.HasPieceAt(pos) || seen[pos] {
			return errors.Wrapf(errors.ErrSquareOccupied, "adding %s", p)
		}
		seen[pos] = true
	}
	for _, p := range pieces {
		b.set(p.Position(), p)
		b.pieces = append(b.pieces, p)
	}
	return nil
}

// RemovePiece takes a live piece off the board.
func (b *Board) RemovePiece(p Piece) error {
	pos := p.Position()
	if b.At(pos) != p {
		return errors.Wrapf(errors.ErrNoPiece, "removing %s", p)
	}
	b.set(pos, nil)
	if i := slices.Index(b.pieces, p); i >= 0 {
		b.pieces = slices.Delete(b.pieces, i, i+1)
	}
	return nil
}

// At returns the piece on pos, or nil for an empty or off-board square.
func (b *Board) At(pos chess.Position) Piece {
	if !pos.IsValid() {
		return nil
	}
	return b.squares[pos.Rank-1][pos.File-1]
}

func (b *Board) set(pos chess.Position, p Piece) {
	b.squares[pos.Rank-1][pos.File-1] = p
}

// HasPieceAt reports whether any piece stands on pos.
func (b *Board) HasPieceAt(pos chess.Position) bool {
	return b.At(pos) != nil
}

// HasColourAt reports whether a piece of the given colour stands on pos.
func (b *Board) HasColourAt(pos chess.Position, colour chess.Colour) bool {
	p := b.At(pos)
	return p != nil && p.Colour() == colour
}

// IsValidPosition reports whether pos lies on the board.
func (b *Board) IsValidPosition(pos chess.Position) bool {
	return pos.IsValid()
}

// Pieces returns the live pieces in registration order.
func (b *Board) Pieces() []Piece {
	return slices.Clone(b.pieces)
}

// PlayersPieces returns the live pieces of one colour in registration order.
func (b *Board) PlayersPieces(colour chess.Colour) []Piece {
	var out []Piece
	for _, p := range b.pieces {
		if p.Colour() == colour {
			out = append(out, p)
		}
	}
	return out
}

// King returns the King of the given colour, or nil.
func (b *Board) King(colour chess.Colour) Piece {
	for _, p := range b.pieces {
		if p.Type() == chess.King && p.Colour() == colour {
			return p
		}
	}
	return nil
}

// validateMove checks that the move's piece stands on From and that To is an
// empty square on the board.
func (b *Board) validateMove(m *Move) error {
	if m.Piece == nil || b.At(m.From) != m.Piece {
		return errors.Wrapf(errors.ErrNoPiece, "moving from %s", m.From)
	}
	if !m.To.IsValid() {
		return errors.Wrapf(errors.ErrInvalidPosition, "moving to %s", m.To)
	}
	if b.HasPieceAt(m.To) {
		return errors.Wrapf(errors.ErrSquareOccupied, "moving to %s", m.To)
	}
	return nil
}

// ExecuteMove relocates the move's piece from From to To and marks it moved.
// Any occupant of To must have been captured beforehand.
func (b *Board) ExecuteMove(m *Move) error {
	if err := b.validateMove(m); err != nil {
		return err
	}
	s := m.Piece.state()
	b.set(m.From, nil)
	b.set(m.To, m.Piece)
	s.position = m.To
	s.moved = true
	return nil
}

// SetEnPassant arms the en passant target square.
func (b *Board) SetEnPassant(pos chess.Position) {
	b.enPassant = pos
	b.hasEnPassant = true
}

// EnPassant returns the armed en passant target, if any.
func (b *Board) EnPassant() (chess.Position, bool) {
	return b.enPassant, b.hasEnPassant
}

// HasEnPassantAt reports whether pos is the armed en passant target.
func (b *Board) HasEnPassantAt(pos chess.Position) bool {
	return b.hasEnPassant && b.enPassant == pos
}

// ClearEnPassant discards the en passant target.
func (b *Board) ClearEnPassant() {
	b.enPassant = chess.Position{}
	b.hasEnPassant = false
}

// CurrentMoves returns the legal move set last computed for colour.
func (b *Board) CurrentMoves(colour chess.Colour) *MoveSet {
	return b.legal[colour]
}

// CurrentPins returns the pinning and protection set last computed for colour.
func (b *Board) CurrentPins(colour chess.Colour) *MoveSet {
	return b.pins[colour]
}

// Roster returns a Roster that only touches the board. It is used when moves
// are executed without a game tracking the players.
func (b *Board) Roster() Roster {
	return boardRoster{b}
}

type boardRoster struct{ b *Board }

func (r boardRoster) CapturePiece(p Piece) error { return r.b.RemovePiece(p) }
func (r boardRoster) AddPiece(p Piece) error     { return r.b.AddPieces(p) }
func (r boardRoster) RemovePiece(p Piece) error  { return r.b.RemovePiece(p) }

// Play captures the occupant of the destination, if any, and executes the
// move against the board alone.
func (b *Board) Play(m *Move) error {
	if err := b.CheckMove(m); err != nil {
		return err
	}
	if victim := b.At(m.To); victim != nil {
		if err := b.RemovePiece(victim); err != nil {
			return err
		}
	}
	return m.Execute(b, b.Roster())
}

func (b *Board) validateOrigin(m *Move) error {
	if m.Piece == nil || b.At(m.From) != m.Piece {
		return errors.Wrapf(errors.ErrNoPiece, "moving from %s", m.From)
	}
	return nil
}

// CheckMove reports whether m can be executed on the board as it stands: the
// piece is on its origin, the destination is on the board and free of a
// teammate, and any en passant victim or castling rook is in place. It
// changes nothing.
func (b *Board) CheckMove(m *Move) error {
	if err := b.validateOrigin(m); err != nil {
		return err
	}
	if !m.To.IsValid() {
		return errors.Wrapf(errors.ErrInvalidPosition, "moving to %s", m.To)
	}
	if b.HasColourAt(m.To, m.Piece.Colour()) {
		return errors.Wrapf(errors.ErrSquareOccupied, "moving to %s", m.To)
	}
	switch m.Kind {
	case EnPassantMove:
		victim := b.At(m.CapturedAt)
		if victim == nil || victim.Colour() == m.Piece.Colour() {
			return errors.Wrapf(errors.ErrNoPiece, "en passant capture on %s", m.CapturedAt)
		}
	case KingsideCastleMove, QueensideCastleMove:
		home := chess.HomeRank(m.Piece.Colour())
		rookFrom, rookTo, _ := castleFiles(m.Kind)
		rook := b.At(chess.Pos(home, rookFrom))
		if rook == nil || rook.Type() != chess.Rook || rook.Colour() != m.Piece.Colour() {
			return errors.Wrapf(errors.ErrNoPiece, "castling rook on %s", chess.Pos(home, rookFrom))
		}
		if b.HasPieceAt(chess.Pos(home, rookTo)) {
			return errors.Wrapf(errors.ErrSquareOccupied, "castling rook to %s", chess.Pos(home, rookTo))
		}
	}
	return nil
}
