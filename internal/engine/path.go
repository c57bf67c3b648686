package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction is a named ray direction measured in rank and file steps.
type Direction struct {
	Name string
	Rank int
	File int
}

// The eight ray directions. North points from White's home rank towards Black's.
var (
	West      = Direction{Name: "west", Rank: 0, File: -1}
	East      = Direction{Name: "east", Rank: 0, File: 1}
	North     = Direction{Name: "north", Rank: 1, File: 0}
	South     = Direction{Name: "south", Rank: -1, File: 0}
	SouthWest = Direction{Name: "south-west", Rank: -1, File: -1}
	SouthEast = Direction{Name: "south-east", Rank: -1, File: 1}
	NorthEast = Direction{Name: "north-east", Rank: 1, File: 1}
	NorthWest = Direction{Name: "north-west", Rank: 1, File: -1}
)

var (
	cardinalDirections = []Direction{West, East, North, South}
	diagonalDirections = []Direction{SouthWest, SouthEast, NorthEast, NorthWest}
	allDirections      = append(append([]Direction{}, cardinalDirections...), diagonalDirections...)
)

// Offsets for the stepping pieces, as {rank, file} pairs.
var (
	knightOffsets = [][2]int{{1, 2}, {-1, 2}, {2, -1}, {2, 1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}}
	kingOffsets   = [][2]int{{-1, 0}, {-1, -1}, {-1, 1}, {1, 0}, {1, -1}, {1, 1}, {0, 1}, {0, -1}}
)

// String returns the direction name.
func (d Direction) String() string {
	return d.Name
}

// ray returns the positions walking from origin (exclusive) to the board edge.
func ray(origin chess.Position, d Direction) []chess.Position {
	var positions []chess.Position
	for pos := origin.Offset(d.Rank, d.File); pos.IsValid(); pos = pos.Offset(d.Rank, d.File) {
		positions = append(positions, pos)
	}
	return positions
}

// directionBetween returns the direction leading from one square to another
// when both share a rank, file or diagonal.
func directionBetween(from, to chess.Position) (Direction, bool) {
	dRank := to.Rank - from.Rank
	dFile := to.File - from.File
	if dRank == 0 && dFile == 0 {
		return Direction{}, false
	}
	if dRank != 0 && dFile != 0 && abs(dRank) != abs(dFile) {
		return Direction{}, false
	}
	for _, d := range allDirections {
		if d.Rank == unit(dRank) && d.File == unit(dFile) {
			return d, true
		}
	}
	return Direction{}, false
}

// stepTargets returns the on-board squares reached by applying each offset to origin.
func stepTargets(origin chess.Position, offsets [][2]int) []chess.Position {
	positions := make([]chess.Position, 0, len(offsets))
	for _, offset := range offsets {
		pos := origin.Offset(offset[0], offset[1])
		if pos.IsValid() {
			positions = append(positions, pos)
		}
	}
	return positions
}

func containsPosition(positions []chess.Position, pos chess.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// unit clamps a delta to -1, 0 or 1.
func unit(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
