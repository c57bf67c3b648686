package game

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Player is one side of a game: its live pieces, the pieces it has captured
// and the status computed at the start of its turn.
type Player struct {
	colour   chess.Colour
	pieces   []engine.Piece
	captured []engine.Piece
	king     engine.Piece
	status   chess.Status
}

// NewPlayer creates a player owning the given pieces.
func NewPlayer(colour chess.Colour, pieces []engine.Piece) *Player {
	p := &Player{colour: colour}
	for _, piece := range pieces {
		p.AddPiece(piece)
	}
	return p
}

// Colour returns the player's colour.
func (p *Player) Colour() chess.Colour {
	return p.colour
}

// Pieces returns the player's live pieces.
func (p *Player) Pieces() []engine.Piece {
	return slices.Clone(p.pieces)
}

// CapturedPieces returns the enemy pieces this player has taken, in order.
func (p *Player) CapturedPieces() []engine.Piece {
	return slices.Clone(p.captured)
}

// King returns the player's King, or nil if it has none.
func (p *Player) King() engine.Piece {
	return p.king
}

// Status returns the player's current status.
func (p *Player) Status() chess.Status {
	return p.status
}

// AddPiece adds a piece to the roster.
func (p *Player) AddPiece(piece engine.Piece) {
	p.pieces = append(p.pieces, piece)
	if piece.Type() == chess.King {
		p.king = piece
	}
}

// RemovePiece drops a piece from the roster and reports whether it was there.
func (p *Player) RemovePiece(piece engine.Piece) bool {
	i := slices.Index(p.pieces, piece)
	if i < 0 {
		return false
	}
	p.pieces = slices.Delete(p.pieces, i, i+1)
	if piece == p.king {
		p.king = nil
	}
	return true
}

// AddCapturedPiece records an enemy piece taken by this player.
func (p *Player) AddCapturedPiece(piece engine.Piece) {
	p.captured = append(p.captured, piece)
}

// ClearStatus resets a non-terminal status.
func (p *Player) ClearStatus() {
	if !p.status.IsTerminal() {
		p.status = chess.NoStatus
	}
}

func (p *Player) setStatus(s chess.Status) {
	p.status = s
}
