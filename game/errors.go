package game

import "fmt"

// InvalidConfigurationError reports board dimensions or a connect length
// that cannot produce a playable game. Construction fails outright; no
// partial state is returned.
type InvalidConfigurationError struct {
	Width   int
	Height  int
	Connect int
}

func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: width=%d height=%d connect=%d",
		e.Width, e.Height, e.Connect)
}

// IllegalMoveError reports a rejected move: the column is out of range,
// full, or the game is already over. The state is left unmodified; the
// caller can retry with one of LegalMoves.
type IllegalMoveError struct {
	Column     int
	LegalMoves []int
}

func (e IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: column %d is not playable, legal moves: %v",
		e.Column, e.LegalMoves)
}
