package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnCaptureFiles lists the capture diagonals, right before left.
var pawnCaptureFiles = []int{1, -1}

// PotentialMoves returns the pawn's pseudo-legal moves: diagonal captures,
// en passant, a single push, a double advance from the starting rank, and
// promotions on the last rank.
func (p *Pawn) PotentialMoves(b *Board) *MoveSet {
	ms := &MoveSet{}
	dir := chess.ColourOffset(p.colour)

	for _, df := range pawnCaptureFiles {
		to := p.position.Offset(dir, df)
		if to.IsValid() && b.HasColourAt(to, p.colour.Opposite()) {
			ms.Add(p.moveTo(to))
		}
	}
	if m := p.enPassant(b); m != nil {
		ms.Add(m)
	}

	one := p.position.Offset(dir, 0)
	if !one.IsValid() || b.HasPieceAt(one) {
		return ms
	}
	ms.Add(p.moveTo(one))

	if p.position.Rank == chess.PawnRank(p.colour) {
		two := p.position.Offset(2*dir, 0)
		if two.IsValid() && !b.HasPieceAt(two) {
			ms.Add(newAdvance(p, two, one))
		}
	}
	return ms
}

// PinningMoves returns the diagonal squares the pawn covers.
func (p *Pawn) PinningMoves(b *Board) *MoveSet {
	ms := &MoveSet{}
	dir := chess.ColourOffset(p.colour)
	for _, df := range pawnCaptureFiles {
		to := p.position.Offset(dir, df)
		if to.IsValid() && !b.HasColourAt(to, p.colour.Opposite()) {
			ms.Add(NewMove(p, to))
		}
	}
	return ms
}

// enPassant returns the en passant capture available to the pawn, or nil.
func (p *Pawn) enPassant(b *Board) *Move {
	target, ok := b.EnPassant()
	if !ok {
		return nil
	}
	dir := chess.ColourOffset(p.colour)
	for _, df := range pawnCaptureFiles {
		if target != p.position.Offset(dir, df) {
			continue
		}
		captured := chess.Pos(p.position.Rank, target.File)
		victim := b.At(captured)
		if victim == nil || victim.Type() != chess.Pawn || victim.Colour() == p.colour {
			return nil
		}
		return newEnPassant(p, target, captured)
	}
	return nil
}

// moveTo returns a normal move, or a promotion when to is on the last rank.
func (p *Pawn) moveTo(to chess.Position) *Move {
	if to.Rank == chess.PromotionRank(p.colour) {
		return newKindMove(p, to, PromotionMove)
	}
	return NewMove(p, to)
}
