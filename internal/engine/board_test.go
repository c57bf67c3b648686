package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestBoard_AddPieces(t *testing.T) {
	tests := []struct {
		name    string
		pieces  []Piece
		wantErr error
	}{
		{
			name:   "two kings",
			pieces: []Piece{NewPiece(chess.King, chess.White, testutil.Sq("e1")), NewPiece(chess.King, chess.Black, testutil.Sq("e8"))},
		},
		{
			name:    "off board",
			pieces:  []Piece{NewPiece(chess.Rook, chess.White, chess.Pos(0, 1))},
			wantErr: errors.ErrInvalidPosition,
		},
		{
			name:    "same square twice",
			pieces:  []Piece{NewPiece(chess.Rook, chess.White, testutil.Sq("a1")), NewPiece(chess.Knight, chess.Black, testutil.Sq("a1"))},
			wantErr: errors.ErrSquareOccupied,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBoard()
			err := b.AddPieces(tt.pieces...)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				if len(b.Pieces()) != 0 {
					t.Errorf("len(Pieces()) = %d after a rejected batch, want 0", len(b.Pieces()))
				}
				return
			}
			testutil.AssertNoError(t, err)
			for _, p := range tt.pieces {
				if b.At(p.Position()) != p {
					t.Errorf("At(%v) = %v, want %v", p.Position(), b.At(p.Position()), p)
				}
			}
		})
	}
}

func TestBoard_AddPiecesOntoOccupiedSquare(t *testing.T) {
	b := NewStandardBoard()
	err := b.AddPieces(NewPiece(chess.Queen, chess.White, testutil.Sq("e2")))
	testutil.AssertErrorIs(t, err, errors.ErrSquareOccupied)
}

func TestBoard_Lookups(t *testing.T) {
	b := NewStandardBoard()

	if got := len(b.Pieces()); got != 32 {
		t.Errorf("len(Pieces()) = %d, want 32", got)
	}
	if got := len(b.PlayersPieces(chess.Black)); got != 16 {
		t.Errorf("len(PlayersPieces(Black)) = %d, want 16", got)
	}
	if k := b.King(chess.Black); k == nil || k.Position() != testutil.Sq("e8") {
		t.Errorf("King(Black) = %v, want the King on e8", k)
	}
	if !b.HasColourAt(testutil.Sq("d1"), chess.White) {
		t.Error("HasColourAt(d1, White) = false")
	}
	if b.HasColourAt(testutil.Sq("d1"), chess.Black) {
		t.Error("HasColourAt(d1, Black) = true")
	}
	if b.HasPieceAt(testutil.Sq("e4")) {
		t.Error("HasPieceAt(e4) = true on the starting board")
	}
	if b.At(chess.Pos(9, 1)) != nil {
		t.Error("At() off the board should be nil")
	}
	if b.IsValidPosition(chess.Pos(1, 9)) {
		t.Error("IsValidPosition(rank 1, file 9) = true")
	}
	if NewBoard().King(chess.White) != nil {
		t.Error("King() on an empty board should be nil")
	}
}

func TestBoard_RemovePiece(t *testing.T) {
	b := NewStandardBoard()
	knight := b.At(testutil.Sq("g1"))

	testutil.AssertNoError(t, b.RemovePiece(knight))
	if b.HasPieceAt(testutil.Sq("g1")) {
		t.Error("g1 still occupied after RemovePiece")
	}
	if got := len(b.PlayersPieces(chess.White)); got != 15 {
		t.Errorf("len(PlayersPieces(White)) = %d, want 15", got)
	}
	testutil.AssertErrorIs(t, b.RemovePiece(knight), errors.ErrNoPiece)
}

func TestBoard_ExecuteMove(t *testing.T) {
	b := NewStandardBoard()
	knight := b.At(testutil.Sq("g1"))

	testutil.AssertNoError(t, b.ExecuteMove(NewMove(knight, testutil.Sq("f3"))))
	if b.At(testutil.Sq("f3")) != knight || b.HasPieceAt(testutil.Sq("g1")) {
		t.Error("knight not relocated from g1 to f3")
	}
	if knight.Position() != testutil.Sq("f3") || !knight.HasMoved() {
		t.Errorf("knight = %v moved=%v, want f3 and moved", knight.Position(), knight.HasMoved())
	}
}

func TestBoard_ExecuteMoveErrors(t *testing.T) {
	tests := []struct {
		name    string
		move    func(b *Board) *Move
		wantErr error
	}{
		{
			name: "stale origin",
			move: func(b *Board) *Move {
				m := NewMove(b.At(testutil.Sq("g1")), testutil.Sq("f3"))
				m.From = testutil.Sq("h1")
				return m
			},
			wantErr: errors.ErrNoPiece,
		},
		{
			name:    "occupied destination",
			move:    func(b *Board) *Move { return NewMove(b.At(testutil.Sq("d1")), testutil.Sq("d2")) },
			wantErr: errors.ErrSquareOccupied,
		},
		{
			name:    "off board",
			move:    func(b *Board) *Move { return NewMove(b.At(testutil.Sq("a1")), chess.Pos(1, 0)) },
			wantErr: errors.ErrInvalidPosition,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewStandardBoard()
			before := b.Layout()
			testutil.AssertErrorIs(t, b.ExecuteMove(tt.move(b)), tt.wantErr)
			testutil.AssertEqual(t, b.Layout(), before, "board changed by a rejected move")
		})
	}
}

func TestBoard_EnPassantTarget(t *testing.T) {
	b := NewBoard()
	if _, ok := b.EnPassant(); ok {
		t.Error("new board should have no en passant target")
	}

	b.SetEnPassant(testutil.Sq("e3"))
	if !b.HasEnPassantAt(testutil.Sq("e3")) {
		t.Error("HasEnPassantAt(e3) = false after SetEnPassant")
	}
	if b.HasEnPassantAt(testutil.Sq("d3")) {
		t.Error("HasEnPassantAt(d3) = true")
	}

	b.ClearEnPassant()
	if _, ok := b.EnPassant(); ok {
		t.Error("EnPassant() still armed after ClearEnPassant")
	}
}

func TestBoard_PlayCastles(t *testing.T) {
	tests := []struct {
		name     string
		to       string
		wantKing string
		wantRook string
		rookFrom string
	}{
		{"kingside", "g1", "g1", "f1", "h1"},
		{"queenside", "c1", "c1", "d1", "a1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustLayout(t, "4k3/8/8/8/8/8/8/R3K2R")
			m := b.CalculateMoves(chess.White).Moves.Find(testutil.Sq("e1"), testutil.Sq(tt.to))
			if m == nil {
				t.Fatalf("castle to %s not generated", tt.to)
			}
			testutil.AssertNoError(t, b.Play(m))

			if p := b.At(testutil.Sq(tt.wantKing)); p == nil || p.Type() != chess.King {
				t.Errorf("At(%s) = %v, want the King", tt.wantKing, p)
			}
			if p := b.At(testutil.Sq(tt.wantRook)); p == nil || p.Type() != chess.Rook || !p.HasMoved() {
				t.Errorf("At(%s) = %v, want the moved rook", tt.wantRook, p)
			}
			if b.HasPieceAt(testutil.Sq(tt.rookFrom)) {
				t.Errorf("%s still occupied", tt.rookFrom)
			}
		})
	}
}

func TestBoard_PlayPromotion(t *testing.T) {
	b := mustLayout(t, "1n2k3/P7/8/8/8/8/8/4K3")
	pawn := b.At(testutil.Sq("a7"))

	m := b.CalculateMoves(chess.White).Moves.Find(testutil.Sq("a7"), testutil.Sq("b8"))
	if m == nil || m.Kind != PromotionMove {
		t.Fatalf("a7b8 = %v, want a promotion", m)
	}
	testutil.AssertNoError(t, b.Play(m))

	queen := b.At(testutil.Sq("b8"))
	if queen == nil || queen.Type() != chess.Queen || queen.Colour() != chess.White {
		t.Fatalf("At(b8) = %v, want a white Queen", queen)
	}
	for _, p := range b.Pieces() {
		if p == pawn {
			t.Error("promoted pawn still registered on the board")
		}
		if p.Type() == chess.Knight {
			t.Error("captured knight still registered on the board")
		}
	}
	if b.HasPieceAt(testutil.Sq("a7")) {
		t.Error("a7 still occupied")
	}
}

func TestBoard_PlayRejectsOwnCapture(t *testing.T) {
	b := NewStandardBoard()
	m := NewMove(b.At(testutil.Sq("d1")), testutil.Sq("d2"))
	testutil.AssertErrorIs(t, b.Play(m), errors.ErrSquareOccupied)
}

func TestBoard_CheckMove(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		move    func(*Board) *Move
		wantErr error
	}{
		{
			name:   "quiet move",
			layout: InitialLayout,
			move:   func(b *Board) *Move { return NewMove(b.At(testutil.Sq("g1")), testutil.Sq("f3")) },
		},
		{
			name:   "capture",
			layout: "4k3/8/8/3p4/4P3/8/8/4K3",
			move:   func(b *Board) *Move { return NewMove(b.At(testutil.Sq("e4")), testutil.Sq("d5")) },
		},
		{
			name:    "piece not on its origin",
			layout:  InitialLayout,
			move:    func(b *Board) *Move { return &Move{Piece: b.At(testutil.Sq("g1")), From: testutil.Sq("g2"), To: testutil.Sq("f3")} },
			wantErr: errors.ErrNoPiece,
		},
		{
			name:    "off the board",
			layout:  InitialLayout,
			move:    func(b *Board) *Move { return NewMove(b.At(testutil.Sq("a1")), chess.Pos(1, 0)) },
			wantErr: errors.ErrInvalidPosition,
		},
		{
			name:    "onto a teammate",
			layout:  InitialLayout,
			move:    func(b *Board) *Move { return NewMove(b.At(testutil.Sq("d1")), testutil.Sq("d2")) },
			wantErr: errors.ErrSquareOccupied,
		},
		{
			name:   "en passant with its victim",
			layout: "4k3/8/8/3pP3/8/8/8/4K3",
			move: func(b *Board) *Move {
				return newEnPassant(b.At(testutil.Sq("e5")), testutil.Sq("d6"), testutil.Sq("d5"))
			},
		},
		{
			name:   "en passant without a victim",
			layout: "4k3/8/8/4P3/8/8/8/4K3",
			move: func(b *Board) *Move {
				return newEnPassant(b.At(testutil.Sq("e5")), testutil.Sq("d6"), testutil.Sq("d5"))
			},
			wantErr: errors.ErrNoPiece,
		},
		{
			name:   "castle with its rook",
			layout: "4k3/8/8/8/8/8/8/4K2R",
			move: func(b *Board) *Move {
				return newKindMove(b.At(testutil.Sq("e1")), testutil.Sq("g1"), KingsideCastleMove)
			},
		},
		{
			name:   "castle without a rook",
			layout: "4k3/8/8/8/8/8/8/4K2N",
			move: func(b *Board) *Move {
				return newKindMove(b.At(testutil.Sq("e1")), testutil.Sq("g1"), KingsideCastleMove)
			},
			wantErr: errors.ErrNoPiece,
		},
		{
			name:   "castle onto a blocked rook square",
			layout: "4k3/8/8/8/8/8/8/R2NK3",
			move: func(b *Board) *Move {
				return newKindMove(b.At(testutil.Sq("e1")), testutil.Sq("c1"), QueensideCastleMove)
			},
			wantErr: errors.ErrSquareOccupied,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustLayout(t, tt.layout)
			before := b.Layout()
			err := b.CheckMove(tt.move(b))
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
			} else {
				testutil.AssertErrorIs(t, err, tt.wantErr)
			}
			testutil.AssertEqual(t, b.Layout(), before, "CheckMove changed the board")
		})
	}
}

func TestBoard_CurrentPins(t *testing.T) {
	b := mustLayout(t, "4k3/4r3/8/8/8/8/4N3/4K3")
	if got := b.CurrentPins(chess.Black).Len(); got != 0 {
		t.Errorf("CurrentPins(Black).Len() = %d before any pass, want 0", got)
	}

	b.CalculateMoves(chess.White)

	var pin *Vector
	for _, v := range b.CurrentPins(chess.Black).Vectors() {
		if v.Kind == PinVector {
			pin = v
		}
	}
	if pin == nil {
		t.Fatal("CurrentPins(Black) has no pin vector for the rook on e7")
	}
	for _, sq := range []string{"e6", "e2", "e1"} {
		if !pin.Contains(testutil.Sq(sq)) {
			t.Errorf("pin vector %v does not pass through %s", pin.Positions(), sq)
		}
	}
	if !b.At(testutil.Sq("e2")).IsPinned() {
		t.Error("knight on e2 is not flagged pinned")
	}
}
