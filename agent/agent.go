// Package agent defines the callers that drive a game. The engine itself
// prescribes no move-selection strategy; anything that can pick a column
// for the player to move is an agent. Search-based agents are expected to
// Clone the state before running speculative lines.
package agent

import "connect4/game"

// Agent picks the next column for the current player.
type Agent interface {
	FindMove(state *game.GameState) (int, error)
}
