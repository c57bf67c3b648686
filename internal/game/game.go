// Package game sequences turns over an engine.Board: it keeps the players'
// rosters and statuses, validates and executes moves, and records history.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is a single game of chess. It is not safe for concurrent use.
type Game struct {
	id      uuid.UUID
	cfg     *config.Config
	board   *engine.Board
	players [2]*Player

	turn     chess.Colour
	gameOver bool
	outcome  engine.Outcome
	history  []Record
}

// Start creates a game in the standard starting position with White to move
// and runs the first legality pass. A nil cfg means config.NewConfig().
func Start(cfg *config.Config) *Game {
	white := engine.StartingPieces(chess.White)
	black := engine.StartingPieces(chess.Black)
	board := engine.NewBoard()
	// Starting squares are distinct and on the board.
	_ = board.AddPieces(white...)
	_ = board.AddPieces(black...)
	return newGame(cfg, board, chess.White)
}

// NewFromLayout creates a game from a piece placement diagram with the given
// side to move. Pieces start unmoved and no en passant target is armed.
func NewFromLayout(cfg *config.Config, layout string, toMove chess.Colour) (*Game, error) {
	board, err := engine.NewBoardFromLayout(layout)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, board, toMove), nil
}

func newGame(cfg *config.Config, board *engine.Board, toMove chess.Colour) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{
		id:    uuid.New(),
		cfg:   cfg,
		board: board,
		turn:  toMove,
	}
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		g.players[colour] = NewPlayer(colour, board.PlayersPieces(colour))
	}
	g.logf(config.Commentary, "started, %s to move", toMove)
	g.evaluate()
	return g
}

// ID returns the game's unique identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns the game's board.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.gameOver
}

// Player returns the player of the given colour.
func (g *Game) Player(colour chess.Colour) *Player {
	return g.players[colour]
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.turn]
}

// OtherPlayer returns the player waiting.
func (g *Game) OtherPlayer() *Player {
	return g.players[g.turn.Opposite()]
}

// Outcome returns the result of the last legality pass.
func (g *Game) Outcome() engine.Outcome {
	return g.outcome
}

// LegalMoves returns the moves the side to move may play. It is empty once
// the game is over.
func (g *Game) LegalMoves() *engine.MoveSet {
	if g.gameOver {
		return engine.NewMoveSet()
	}
	return g.outcome.Moves
}

// History returns the executed plies in order.
func (g *Game) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

// Move plays the legal move from one square to another. Castles are given as
// the King's two-square move and promotions as the pawn's move.
func (g *Game) Move(from, to chess.Position) error {
	piece := g.board.At(from)
	if piece == nil {
		return g.reject(errors.Wrapf(errors.ErrNoPiece, "square %s", from), from, to)
	}
	if err := g.checkTurn(piece, from, to); err != nil {
		return err
	}
	m := g.LegalMoves().Find(from, to)
	if m == nil {
		return g.reject(errors.ErrIllegalMove, from, to)
	}
	return g.ExecuteMove(m)
}

// ExecuteMove plays a move. It is rejected with a *errors.MoveError, leaving
// the game unchanged, when the game is over, the piece belongs to the other
// side, the move is not in the legal set, or the board no longer matches the
// move. A move built by the caller is matched against the legal set by its
// squares.
func (g *Game) ExecuteMove(m *engine.Move) error {
	if m == nil || m.Piece == nil {
		return g.reject(errors.ErrNoPiece, chess.Position{}, chess.Position{})
	}
	if err := g.checkTurn(m.Piece, m.From, m.To); err != nil {
		return err
	}
	legal := g.LegalMoves()
	if !legal.HasMove(m) {
		resolved := legal.Find(m.From, m.To)
		if resolved == nil || resolved.Piece != m.Piece {
			return g.reject(errors.ErrIllegalMove, m.From, m.To)
		}
		m = resolved
	}

	if err := g.board.CheckMove(m); err != nil {
		return g.reject(err, m.From, m.To)
	}

	g.board.ClearEnPassant()

	captured := chess.NoPiece
	if victim := g.board.At(m.To); victim != nil {
		captured = victim.Type()
		if err := g.CapturePiece(victim); err != nil {
			return g.reject(err, m.From, m.To)
		}
	}
	if m.Kind == engine.EnPassantMove {
		captured = chess.Pawn
	}
	if err := m.Execute(g.board, g); err != nil {
		return g.reject(err, m.From, m.To)
	}

	record := Record{
		Ply:      len(g.history) + 1,
		Colour:   g.turn,
		Entry:    m.ToHistory(),
		Kind:     m.Kind,
		Captured: captured,
	}
	g.history = append(g.history, record)
	g.logf(config.Commentary, "%s", record)

	g.nextTurn()
	return nil
}

// ForceMove relocates a piece without checking legality, capturing any
// occupant of the destination. The side to move is unchanged and its legal
// moves are recomputed. It is meant for setting up positions.
func (g *Game) ForceMove(from, to chess.Position) error {
	piece := g.board.At(from)
	if piece == nil {
		return g.reject(errors.Wrapf(errors.ErrNoPiece, "square %s", from), from, to)
	}
	if !to.IsValid() {
		return g.reject(errors.ErrInvalidPosition, from, to)
	}
	if from == to {
		return g.reject(errors.ErrIllegalMove, from, to)
	}
	if victim := g.board.At(to); victim != nil {
		if err := g.CapturePiece(victim); err != nil {
			return g.reject(err, from, to)
		}
	}
	if err := g.board.ExecuteMove(engine.NewMove(piece, to)); err != nil {
		return g.reject(err, from, to)
	}
	g.evaluate()
	return nil
}

// RemovePieces takes the pieces on the given squares off the board and out
// of their owners' rosters, then recomputes the legal moves. Nothing is
// removed unless every square holds a piece and no square is listed twice.
func (g *Game) RemovePieces(positions ...chess.Position) error {
	pieces := make([]engine.Piece, 0, len(positions))
	seen := make(map[chess.Position]bool, len(positions))
	for _, pos := range positions {
		if seen[pos] {
			return errors.Wrapf(errors.ErrInvalidPosition, "removing piece on %s twice", pos)
		}
		seen[pos] = true
		piece := g.board.At(pos)
		if piece == nil {
			return errors.Wrapf(errors.ErrNoPiece, "removing piece on %s", pos)
		}
		pieces = append(pieces, piece)
	}
	for _, piece := range pieces {
		if err := g.RemovePiece(piece); err != nil {
			return err
		}
	}
	g.evaluate()
	return nil
}

// CapturePiece takes a live piece off the board and its owner's roster and
// adds it to the opponent's captured list.
func (g *Game) CapturePiece(p engine.Piece) error {
	if err := g.RemovePiece(p); err != nil {
		return err
	}
	g.players[p.Colour().Opposite()].AddCapturedPiece(p)
	return nil
}

// AddPiece places a new piece on the board and in its owner's roster.
func (g *Game) AddPiece(p engine.Piece) error {
	if err := g.board.AddPieces(p); err != nil {
		return err
	}
	g.players[p.Colour()].AddPiece(p)
	return nil
}

// RemovePiece takes a piece off the board and out of its owner's roster.
func (g *Game) RemovePiece(p engine.Piece) error {
	if err := g.board.RemovePiece(p); err != nil {
		return err
	}
	g.players[p.Colour()].RemovePiece(p)
	return nil
}

func (g *Game) checkTurn(piece engine.Piece, from, to chess.Position) error {
	if g.gameOver {
		return g.reject(errors.ErrGameOver, from, to)
	}
	if piece.Colour() != g.turn {
		return g.reject(errors.ErrWrongSide, from, to)
	}
	return nil
}

// nextTurn hands the move to the other side and evaluates its position.
func (g *Game) nextTurn() {
	g.turn = g.turn.Opposite()
	g.evaluate()
}

// evaluate runs the legality pass for the side to move and applies the
// resulting status.
func (g *Game) evaluate() {
	for _, p := range g.players {
		p.ClearStatus()
	}
	mover := g.players[g.turn]
	g.outcome = g.board.CalculateMoves(g.turn)
	mover.setStatus(g.outcome.Status())

	switch g.outcome.Kind {
	case engine.Checkmate:
		g.gameOver = true
		g.logf(config.Results, "%s is checkmated, %s wins", g.turn, g.turn.Opposite())
		return
	case engine.Stalemate:
		g.gameOver = true
		g.logf(config.Results, "%s is stalemated, draw", g.turn)
		return
	case engine.Check:
		g.logf(config.Commentary, "%s is in check", g.turn)
	}

	if g.cfg.Rules.DetectInsufficientMaterial && engine.HasInsufficientMaterial(g.board) {
		for _, p := range g.players {
			p.setStatus(chess.Drawn)
		}
		g.gameOver = true
		g.logf(config.Results, "insufficient material, draw")
	}
}

func (g *Game) reject(err error, from, to chess.Position) error {
	moveErr := &errors.MoveError{
		Err:    err,
		Ply:    len(g.history) + 1,
		Colour: g.turn.String(),
	}
	if from.IsValid() {
		moveErr.MoveText = from.String() + to.String()
	}
	return moveErr
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	g.cfg.Logf(level, "game %s: "+format, append([]interface{}{g.ShortID()}, args...)...)
}

// ShortID returns the first eight characters of the game ID, used in logs.
func (g *Game) ShortID() string {
	return g.id.String()[:8]
}
