package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// material tallies the minor pieces of one side.
type material struct {
	minors      int
	bishops     int
	lightBishop bool
}

// HasInsufficientMaterial reports whether neither side can deliver mate:
// bare Kings, a single minor piece against a bare King, or one bishop each
// on squares of the same colour.
func HasInsufficientMaterial(b *Board) bool {
	var sides [2]material
	for _, p := range b.pieces {
		side := &sides[p.Colour()]
		switch p.Type() {
		case chess.King:
		case chess.Knight:
			side.minors++
		case chess.Bishop:
			side.minors++
			side.bishops++
			side.lightBishop = p.Position().IsLight()
		default:
			return false
		}
	}

	white, black := sides[chess.White], sides[chess.Black]
	switch {
	case white.minors+black.minors <= 1:
		return true
	case white.minors == 1 && black.minors == 1:
		return white.bishops == 1 && black.bishops == 1 && white.lightBishop == black.lightBishop
	}
	return false
}
