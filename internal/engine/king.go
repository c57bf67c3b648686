package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PotentialMoves returns the king's single steps plus any castle whose
// conditions hold against the opponent's published threat map.
func (k *King) PotentialMoves(b *Board) *MoveSet {
	ms := steppingMoves(b, k, kingOffsets)
	if canCastle(b, k, KingsideCastleMove) {
		ms.Add(newKindMove(k, castleKingTarget(k.colour, KingsideCastleMove), KingsideCastleMove))
	}
	if canCastle(b, k, QueensideCastleMove) {
		ms.Add(newKindMove(k, castleKingTarget(k.colour, QueensideCastleMove), QueensideCastleMove))
	}
	return ms
}

// PinningMoves returns the squares the king covers.
func (k *King) PinningMoves(b *Board) *MoveSet {
	return coveredSquares(b, k, kingOffsets)
}

// castleFiles returns the rook's starting file, the rook's destination file
// and the direction the king travels.
func castleFiles(kind MoveKind) (rookFrom, rookTo, step int) {
	if kind == KingsideCastleMove {
		return chess.KingsideRookFile, chess.KingFile + 1, 1
	}
	return chess.QueensideRookFile, chess.KingFile - 1, -1
}

func castleKingTarget(colour chess.Colour, kind MoveKind) chess.Position {
	_, _, step := castleFiles(kind)
	return chess.Pos(chess.HomeRank(colour), chess.KingFile+2*step)
}

// canCastle reports whether the king may castle on the given side: neither
// the king nor the rook has moved, the squares between them are empty, and
// the king's square and the two squares it crosses are not threatened.
func canCastle(b *Board, k *King, kind MoveKind) bool {
	home := chess.HomeRank(k.colour)
	if k.moved || k.position != chess.Pos(home, chess.KingFile) {
		return false
	}
	rookFrom, _, step := castleFiles(kind)
	rook := b.At(chess.Pos(home, rookFrom))
	if rook == nil || rook.Type() != chess.Rook || rook.Colour() != k.colour || rook.HasMoved() {
		return false
	}
	for file := chess.KingFile + step; file != rookFrom; file += step {
		if b.HasPieceAt(chess.Pos(home, file)) {
			return false
		}
	}
	opponent := k.colour.Opposite()
	for i := 0; i <= 2; i++ {
		if b.isThreatened(opponent, chess.Pos(home, chess.KingFile+i*step)) {
			return false
		}
	}
	return true
}

// executeCastle moves the king and then the rook to its post-castle square.
func executeCastle(b *Board, m *Move) error {
	home := chess.HomeRank(m.Piece.Colour())
	rookFrom, rookTo, _ := castleFiles(m.Kind)
	rook := b.At(chess.Pos(home, rookFrom))
	if rook == nil || rook.Type() != chess.Rook {
		return errors.Wrapf(errors.ErrNoPiece, "castling rook on %s", chess.Pos(home, rookFrom))
	}
	if err := b.ExecuteMove(m); err != nil {
		return err
	}
	return b.ExecuteMove(NewMove(rook, chess.Pos(home, rookTo)))
}
