package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveKind classifies a move by its execution contract.
type MoveKind int

const (
	NormalMove MoveKind = iota
	AdvanceMove
	EnPassantMove
	KingsideCastleMove
	QueensideCastleMove
	PromotionMove
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case AdvanceMove:
		return "advance"
	case EnPassantMove:
		return "en passant"
	case KingsideCastleMove:
		return "kingside castle"
	case QueensideCastleMove:
		return "queenside castle"
	case PromotionMove:
		return "promotion"
	default:
		return "normal"
	}
}

// Move is a single piece movement generated by a legality pass.
// Moves are created fresh on every pass and are not mutated afterwards.
type Move struct {
	Piece Piece
	From  chess.Position
	To    chess.Position
	Kind  MoveKind

	// EnPassantTarget is the square an AdvanceMove passes over.
	EnPassantTarget chess.Position
	// CapturedAt is the square of the pawn taken by an EnPassantMove.
	CapturedAt chess.Position

	vector *Vector
}

// HistoryEntry is the record of a move kept in a game's history.
type HistoryEntry struct {
	FromRank int
	FromFile int
	ToRank   int
	ToFile   int
	Piece    chess.PieceType
}

// Roster receives the side effects of special moves that add or remove pieces.
// A Game implements it so that player rosters follow the board.
type Roster interface {
	CapturePiece(p Piece) error
	AddPiece(p Piece) error
	RemovePiece(p Piece) error
}

// NewMove creates a normal move of piece from its current square.
func NewMove(piece Piece, to chess.Position) *Move {
	return &Move{Piece: piece, From: piece.Position(), To: to, Kind: NormalMove}
}

func newKindMove(piece Piece, to chess.Position, kind MoveKind) *Move {
	m := NewMove(piece, to)
	m.Kind = kind
	return m
}

func newAdvance(pawn Piece, to, passed chess.Position) *Move {
	m := newKindMove(pawn, to, AdvanceMove)
	m.EnPassantTarget = passed
	return m
}

func newEnPassant(pawn Piece, to, captured chess.Position) *Move {
	m := newKindMove(pawn, to, EnPassantMove)
	m.CapturedAt = captured
	return m
}

// IsCastle reports whether the move is either castle.
func (m *Move) IsCastle() bool {
	return m.Kind == KingsideCastleMove || m.Kind == QueensideCastleMove
}

// Attacks reports whether the move threatens its destination square.
// Pawn pushes, double advances and castles move without attacking.
func (m *Move) Attacks() bool {
	switch m.Kind {
	case AdvanceMove, KingsideCastleMove, QueensideCastleMove:
		return false
	case EnPassantMove:
		return true
	}
	if m.Piece.Type() == chess.Pawn {
		return m.From.File != m.To.File
	}
	return true
}

// String returns the move in coordinate form, e.g. "e2e4" or "a7a8q".
func (m *Move) String() string {
	if m.Kind == PromotionMove {
		return fmt.Sprintf("%s%sq", m.From, m.To)
	}
	return fmt.Sprintf("%s%s", m.From, m.To)
}

// ToHistory returns the history record of the move.
func (m *Move) ToHistory() HistoryEntry {
	return HistoryEntry{
		FromRank: m.From.Rank,
		FromFile: m.From.File,
		ToRank:   m.To.Rank,
		ToFile:   m.To.File,
		Piece:    m.Piece.Type(),
	}
}

// Execute applies the move to the board. Captures of the destination occupant
// are the caller's responsibility; pieces taken or created by the move itself
// (en passant, promotion) are reported to r.
func (m *Move) Execute(b *Board, r Roster) error {
	switch m.Kind {
	case AdvanceMove:
		if err := b.ExecuteMove(m); err != nil {
			return err
		}
		b.SetEnPassant(m.EnPassantTarget)
		return nil

	case EnPassantMove:
		victim := b.At(m.CapturedAt)
		if victim == nil {
			return errors.Wrapf(errors.ErrNoPiece, "en passant capture on %s", m.CapturedAt)
		}
		if err := b.ExecuteMove(m); err != nil {
			return err
		}
		return r.CapturePiece(victim)

	case KingsideCastleMove, QueensideCastleMove:
		return executeCastle(b, m)

	case PromotionMove:
		if err := b.validateMove(m); err != nil {
			return err
		}
		if err := r.RemovePiece(m.Piece); err != nil {
			return err
		}
		queen := NewPiece(chess.Queen, m.Piece.Colour(), m.To)
		queen.state().moved = true
		return r.AddPiece(queen)

	default:
		return b.ExecuteMove(m)
	}
}
