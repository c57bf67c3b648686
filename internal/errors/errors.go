// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common rejection conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongSide indicates an attempt to move the other side's piece.
	ErrWrongSide = errors.New("piece belongs to the other side")

	// ErrGameOver indicates a move attempted after checkmate, stalemate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrNoPiece indicates that a square expected to hold a piece is empty.
	ErrNoPiece = errors.New("no piece on square")

	// ErrInvalidPosition indicates a coordinate outside the board.
	ErrInvalidPosition = errors.New("position off the board")

	// ErrSquareOccupied indicates a piece placed onto an occupied square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrInvalidLayout indicates a malformed piece placement diagram.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with game context: the ply it was attempted
// on, the side to move and the move in coordinate form. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move was attempted on (0 if not applicable)
	Colour   string // Side to move when the move was attempted
	MoveText string // The move in coordinate form, e.g. "e2e4"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move rejected"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// LayoutError represents an error in a piece placement diagram.
type LayoutError struct {
	Err    error  // The underlying error
	Rank   int    // Board rank being parsed (1-8, 0 if unknown)
	Column int    // 1-based character column in the diagram (0 if unknown)
	Got    string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *LayoutError) Error() string {
	var parts []string

	if e.Rank > 0 {
		loc := fmt.Sprintf("rank %d", e.Rank)
		if e.Column > 0 {
			loc += fmt.Sprintf(", column %d", e.Column)
		}
		parts = append(parts, loc)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "layout error"
}

// Unwrap returns the underlying error.
func (e *LayoutError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
