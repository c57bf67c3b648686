package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// slidingMoves walks each direction from p, stopping at the first occupied
// square, which is included only when it holds an enemy piece.
func slidingMoves(b *Board, p Piece, dirs []Direction) *MoveSet {
	ms := &MoveSet{}
	for _, d := range dirs {
		var moves []*Move
		for _, to := range ray(p.Position(), d) {
			occupant := b.At(to)
			if occupant == nil {
				moves = append(moves, NewMove(p, to))
				continue
			}
			if occupant.Colour() != p.Colour() {
				moves = append(moves, NewMove(p, to))
			}
			break
		}
		if len(moves) > 0 {
			ms.AddVector(newVector(d, MoveVector, moves))
		}
	}
	return ms
}

// pinScan classifies each ray from p. A ray whose first blocker is a friendly
// piece becomes a protection vector ending on that piece. A ray whose first
// blocker is an enemy piece becomes a pin vector when the next blocker is the
// King of that same enemy; the vector runs through the pinned piece up to and
// including the King. Any other ray is discarded.
func pinScan(b *Board, p Piece, dirs []Direction) *MoveSet {
	ms := &MoveSet{}
	for _, d := range dirs {
		var (
			moves  []*Move
			pinned Piece
			kind   VectorKind
			valid  bool
		)
	walk:
		for _, to := range ray(p.Position(), d) {
			occupant := b.At(to)
			moves = append(moves, NewMove(p, to))
			switch {
			case occupant == nil:
				continue
			case pinned == nil && occupant.Colour() == p.Colour():
				kind, valid = ProtectionVector, true
				break walk
			case pinned == nil:
				pinned = occupant
			default:
				if occupant.Type() == chess.King && occupant.Colour() == pinned.Colour() {
					kind, valid = PinVector, true
				}
				break walk
			}
		}
		if valid {
			ms.AddVector(newVector(d, kind, moves))
		}
	}
	return ms
}
