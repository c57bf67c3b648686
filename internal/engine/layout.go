package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialLayout is the piece placement of the standard starting position.
const InitialLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// pieceForLetter converts a placement letter to a piece type.
func pieceForLetter(c rune) chess.PieceType {
	switch unicode.ToUpper(c) {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'P':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// LayoutLetter returns the placement letter of a piece: uppercase for White,
// lowercase for Black.
func LayoutLetter(p Piece) byte {
	letter := p.Type().Letter()
	if p.Colour() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseLayout reads a piece placement diagram such as
// "4k3/8/8/8/8/8/8/4K3", rank 8 first, and returns unmoved pieces. Only the
// first whitespace-separated field is read. Each side may have at most one
// King.
func ParseLayout(layout string) ([]Piece, error) {
	fields := strings.Fields(layout)
	if len(fields) == 0 {
		return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Got: layout}
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != chess.BoardSize {
		return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Got: fields[0]}
	}

	var pieces []Piece
	var kings [2]int
	column := 0
	for i, row := range ranks {
		rank := chess.BoardSize - i
		file := 1
		for _, c := range row {
			column++
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case pieceForLetter(c) != chess.NoPiece:
				if file > chess.BoardSize {
					return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Rank: rank, Column: column, Got: string(c)}
				}
				colour := chess.Black
				if unicode.IsUpper(c) {
					colour = chess.White
				}
				t := pieceForLetter(c)
				if t == chess.King {
					kings[colour]++
					if kings[colour] > 1 {
						return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Rank: rank, Column: column, Got: string(c)}
					}
				}
				pieces = append(pieces, NewPiece(t, colour, chess.Pos(rank, file)))
				file++
			default:
				return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Rank: rank, Column: column, Got: string(c)}
			}
		}
		if file != chess.BoardSize+1 {
			return nil, &errors.LayoutError{Err: errors.ErrInvalidLayout, Rank: rank, Column: column, Got: row}
		}
		column++ // separator
	}
	return pieces, nil
}

// NewBoardFromLayout creates a board holding the pieces of a placement diagram.
func NewBoardFromLayout(layout string) (*Board, error) {
	pieces, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	b := NewBoard()
	if err := b.AddPieces(pieces...); err != nil {
		return nil, err
	}
	return b, nil
}

// Layout returns the placement diagram of the board.
func (b *Board) Layout() string {
	var sb strings.Builder
	for rank := chess.BoardSize; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= chess.BoardSize; file++ {
			p := b.At(chess.Pos(rank, file))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(LayoutLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
