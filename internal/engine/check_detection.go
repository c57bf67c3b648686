package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// occupancy looks up the piece on a square. It lets attack detection run
// against a position that differs from the board by a few squares.
type occupancy func(chess.Position) Piece

// IsSquareAttacked reports whether any piece of colour by attacks pos,
// scanning the board directly rather than consulting move sets.
func IsSquareAttacked(b *Board, pos chess.Position, by chess.Colour) bool {
	return squareAttacked(b.At, pos, by)
}

// IsInCheck reports whether the King of the given colour is attacked.
func IsInCheck(b *Board, colour chess.Colour) bool {
	king := b.King(colour)
	if king == nil {
		return false
	}
	return IsSquareAttacked(b, king.Position(), colour.Opposite())
}

func squareAttacked(at occupancy, pos chess.Position, by chess.Colour) bool {
	is := func(q chess.Position, types ...chess.PieceType) bool {
		p := at(q)
		if p == nil || p.Colour() != by {
			return false
		}
		for _, t := range types {
			if p.Type() == t {
				return true
			}
		}
		return false
	}

	// Pawns of colour by attack from the rank behind pos.
	pawnRank := -chess.ColourOffset(by)
	for _, df := range pawnCaptureFiles {
		if q := pos.Offset(pawnRank, df); q.IsValid() && is(q, chess.Pawn) {
			return true
		}
	}

	for _, q := range stepTargets(pos, knightOffsets) {
		if is(q, chess.Knight) {
			return true
		}
	}
	for _, q := range stepTargets(pos, kingOffsets) {
		if is(q, chess.King) {
			return true
		}
	}

	for _, d := range diagonalDirections {
		for _, q := range ray(pos, d) {
			if at(q) != nil {
				if is(q, chess.Bishop, chess.Queen) {
					return true
				}
				break // Blocked
			}
		}
	}
	for _, d := range cardinalDirections {
		for _, q := range ray(pos, d) {
			if at(q) != nil {
				if is(q, chess.Rook, chess.Queen) {
					return true
				}
				break // Blocked
			}
		}
	}
	return false
}

// isThreatened reports whether the published threat map of colour by covers
// pos: an attacking potential move, or a pinning or protection move that
// does not pass through a blocker.
func (b *Board) isThreatened(by chess.Colour, pos chess.Position) bool {
	for _, m := range b.attacks[by].MovesTo(pos) {
		if m.Attacks() {
			return true
		}
	}
	pins := b.pins[by]
	for _, m := range pins.MovesTo(pos) {
		if v := pins.VectorFor(m); v != nil && v.Kind == PinVector {
			continue
		}
		return true
	}
	return false
}

// attacksOn returns the moves of set that attack pos.
func attacksOn(set *MoveSet, pos chess.Position) []*Move {
	var out []*Move
	for _, m := range set.MovesTo(pos) {
		if m.Attacks() {
			out = append(out, m)
		}
	}
	return out
}

// behindKing returns the squares directly beyond the King on each sliding
// checker's line. The King may not retreat onto them.
func behindKing(king Piece, checks []*Move) []chess.Position {
	var out []chess.Position
	for _, m := range checks {
		if !m.Piece.Type().IsSlider() {
			continue
		}
		d, ok := directionBetween(m.From, king.Position())
		if !ok {
			continue
		}
		if q := king.Position().Offset(d.Rank, d.File); q.IsValid() {
			out = append(out, q)
		}
	}
	return out
}

// enPassantExposesKing reports whether removing both pawns of an en passant
// capture leaves the mover's King attacked.
func (b *Board) enPassantExposesKing(m *Move, king Piece) bool {
	if king == nil {
		return false
	}
	at := func(q chess.Position) Piece {
		switch q {
		case m.From, m.CapturedAt:
			return nil
		case m.To:
			return m.Piece
		}
		return b.At(q)
	}
	return squareAttacked(at, king.Position(), m.Piece.Colour().Opposite())
}
