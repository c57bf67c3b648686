package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CalculateMoves runs the legality pass for the side to move. It computes the
// opponent's potential and pinning sets, publishes them as the opponent's
// threat map, updates the per-piece flags and caches, and resolves check and
// pins analytically without copying the board.
//
// Calling it twice on an unchanged board yields the same moves.
func (b *Board) CalculateMoves(colour chess.Colour) Outcome {
	opponent := colour.Opposite()

	// The mover's stale sets must not influence the opponent's castling.
	b.attacks[colour] = &MoveSet{}
	b.pins[colour] = &MoveSet{}

	team := b.PlayersPieces(colour)
	enemies := b.PlayersPieces(opponent)

	enemyPins := &MoveSet{}
	enemyMoves := &MoveSet{}
	for _, p := range enemies {
		enemyPins.Combine(p.PinningMoves(b))
		enemyMoves.Combine(p.PotentialMoves(b))
	}
	for _, p := range enemies {
		p.state().protected = enemyPins.HasMoveTo(p.Position())
	}
	b.attacks[opponent] = enemyMoves
	b.pins[opponent] = enemyPins

	pinLines := make(map[Piece]*Vector)
	for _, p := range team {
		s := p.state()
		s.resetFlags()
		s.underAttack = len(attacksOn(enemyMoves, p.Position())) > 0
		for _, v := range enemyPins.vectors {
			if v.Kind == PinVector && v.Contains(p.Position()) {
				s.pinned = true
				if p.Type() != chess.King {
					pinLines[p] = v
				}
			}
		}
	}

	teamMoves := &MoveSet{}
	teamPins := &MoveSet{}
	for _, p := range team {
		potential := p.PotentialMoves(b)
		p.state().potential = potential
		teamMoves.Combine(potential)
		teamPins.Combine(p.PinningMoves(b))
	}

	king := b.King(colour)
	var outcome Outcome
	if king != nil && king.IsUnderAttack() {
		outcome = b.resolveCheck(colour, king, team, attacksOn(enemyMoves, king.Position()))
	} else {
		outcome = b.resolveQuiet(colour, king, team, pinLines)
	}

	b.legal[colour] = outcome.Moves
	b.attacks[colour] = teamMoves
	b.pins[colour] = teamPins
	return outcome
}

// resolveCheck builds the replies to check: King moves off the threat map and
// off the checking lines, and, against a single checker, captures of it or
// blocks between it and the King by unpinned pieces.
func (b *Board) resolveCheck(colour chess.Colour, king Piece, team []Piece, checks []*Move) Outcome {
	opponent := colour.Opposite()
	behind := behindKing(king, checks)

	legal := &MoveSet{}
	legal.Combine(king.AvailableMoves().Filter(func(m *Move) bool {
		return !m.IsCastle() && !b.isThreatened(opponent, m.To) && !containsPosition(behind, m.To)
	}))

	if len(checks) == 1 {
		checker := checks[0]
		rescue := b.rescueSquares(checker)
		for _, p := range team {
			if p == king || p.IsPinned() {
				continue
			}
			legal.Combine(p.AvailableMoves().Filter(func(m *Move) bool {
				if m.Kind == EnPassantMove {
					return (containsPosition(rescue, m.To) || m.CapturedAt == checker.From) &&
						!b.enPassantExposesKing(m, king)
				}
				return containsPosition(rescue, m.To)
			}))
		}
	}

	if legal.Len() == 0 {
		return Outcome{Kind: Checkmate, Moves: legal, Checks: checks}
	}
	return Outcome{Kind: Check, Moves: legal, Checks: checks}
}

// rescueSquares returns the checker's square plus, for a sliding checker,
// the squares between it and the King.
func (b *Board) rescueSquares(check *Move) []chess.Position {
	rescue := []chess.Position{check.From}
	if !check.Piece.Type().IsSlider() {
		return rescue
	}
	v := b.attacks[check.Piece.Colour()].VectorFor(check)
	if v == nil {
		return rescue
	}
	for _, pos := range v.Positions() {
		if pos == check.To {
			break
		}
		rescue = append(rescue, pos)
	}
	return rescue
}

// resolveQuiet builds the legal moves when the King is not in check: King
// moves off the threat map, pinned pieces restricted to their pin line, and
// everything else unrestricted.
func (b *Board) resolveQuiet(colour chess.Colour, king Piece, team []Piece, pinLines map[Piece]*Vector) Outcome {
	opponent := colour.Opposite()

	legal := &MoveSet{}
	for _, p := range team {
		moves := p.AvailableMoves()
		switch {
		case p == king:
			moves = moves.Filter(func(m *Move) bool {
				return !b.isThreatened(opponent, m.To)
			})
		case pinLines[p] != nil:
			line := b.pinLine(pinLines[p], p)
			moves = moves.Filter(func(m *Move) bool {
				return containsPosition(line, m.To)
			})
		}
		legal.Combine(moves.Filter(func(m *Move) bool {
			return m.Kind != EnPassantMove || !b.enPassantExposesKing(m, king)
		}))
	}

	if legal.Len() == 0 {
		return Outcome{Kind: Stalemate, Moves: legal}
	}
	return Outcome{Kind: Normal, Moves: legal}
}

// pinLine returns the squares a pinned piece may move to: the pinner's square
// and the pin vector's squares, less its own square and squares holding
// teammates.
func (b *Board) pinLine(v *Vector, p Piece) []chess.Position {
	var line []chess.Position
	if v.Len() > 0 {
		line = append(line, v.moves[0].From)
	}
	for _, pos := range v.Positions() {
		if pos == p.Position() || b.HasColourAt(pos, p.Colour()) {
			continue
		}
		line = append(line, pos)
	}
	return line
}
