package testutil

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Sq converts a square name such as "e4" into a position.
// It panics on malformed names, which only ever come from test literals.
func Sq(name string) chess.Position {
	p, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Squares converts a list of square names into positions.
func Squares(names ...string) []chess.Position {
	out := make([]chess.Position, 0, len(names))
	for _, name := range names {
		out = append(out, Sq(name))
	}
	return out
}
