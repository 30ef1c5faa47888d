package game

import (
	"encoding/binary"
	"hash/fnv"
)

// GameState holds the board, turn tracking, and outcome for one Connect-4
// game, and implements all rules. Mutation happens only through ApplyMove.
// A GameState owns its board exclusively; simulation callers must Clone
// before experimenting so the original is never aliased.
type GameState struct {
	width   int
	height  int
	connect int
	board   *Board
	current Player
	outcome Outcome
}

// NewGameState returns a fresh game: empty board, Player1 to move. The
// connect length must be achievable on the board.
func NewGameState(width, height, connect int) (*GameState, error) {
	if width <= 0 || height <= 0 || connect < 1 || connect > max(width, height) {
		return nil, InvalidConfigurationError{Width: width, Height: height, Connect: connect}
	}
	return &GameState{
		width:   width,
		height:  height,
		connect: connect,
		board:   newBoard(width, height),
		current: Player1,
	}, nil
}

func (gs *GameState) Width() int   { return gs.width }
func (gs *GameState) Height() int  { return gs.height }
func (gs *GameState) Connect() int { return gs.connect }

// Player returns the player to move next.
func (gs *GameState) Player() Player { return gs.current }

// Outcome returns the current tagged outcome.
func (gs *GameState) Outcome() Outcome { return gs.outcome }

// Board exposes the board for read-only collaborators such as rendering.
// It has no mutating methods; all mutation goes through ApplyMove.
func (gs *GameState) Board() *Board { return gs.board }

// LegalMoves returns the playable columns in ascending order. A terminal
// state has no legal moves even when physical space remains.
func (gs *GameState) LegalMoves() []int {
	moves := make([]int, 0, gs.width)
	if gs.outcome.Terminal() {
		return moves
	}
	for col := 0; col < gs.width; col++ {
		if gs.board.columnOpen(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// StepResult bundles everything a simulation caller needs after a move:
// both players' egocentric observations, the zero-sum reward pair indexed
// by Player.Index, whether the episode ended, and an info bundle.
type StepResult struct {
	Observations [2]Observation
	Rewards      [2]float64
	Terminal     bool
	Info         StepInfo
}

// StepInfo reports the legal moves after the move and whose turn is next.
type StepInfo struct {
	LegalMoves []int
	NextPlayer Player
}

// ApplyMove drops the current player's chip into column, flips the turn,
// and resolves the outcome against the just-placed chip: first the
// four-axis win scan, then the draw check once no moves remain. A
// rejected move returns IllegalMoveError and changes nothing; an applied
// move is all-or-nothing.
func (gs *GameState) ApplyMove(column int) (StepResult, error) {
	if gs.outcome.Terminal() || column < 0 || column >= gs.width || !gs.board.columnOpen(column) {
		return StepResult{}, IllegalMoveError{Column: column, LegalMoves: gs.LegalMoves()}
	}

	mover := gs.current
	row := gs.board.drop(column, mover)
	gs.current = mover.Other()

	var rewards [2]float64
	if winsAt(gs.board, column, row, gs.connect) {
		gs.outcome = Outcome{Status: Won, Winner: mover}
		rewards[mover.Index()] = 1
		rewards[mover.Other().Index()] = -1
	} else if len(gs.LegalMoves()) == 0 {
		gs.outcome = Outcome{Status: Drawn}
	}

	return StepResult{
		Observations: [2]Observation{gs.ObservationFor(Player1), gs.ObservationFor(Player2)},
		Rewards:      rewards,
		Terminal:     gs.outcome.Terminal(),
		Info: StepInfo{
			LegalMoves: gs.LegalMoves(),
			NextPlayer: gs.current,
		},
	}, nil
}

// Clone returns a deep, fully independent copy: board contents, player to
// move, and outcome, sharing no mutable storage with the original. Every
// speculative line of play gets its own clone; the original is provably
// unaffected by anything done to the copy.
func (gs *GameState) Clone() *GameState {
	return &GameState{
		width:   gs.width,
		height:  gs.height,
		connect: gs.connect,
		board:   gs.board.clone(),
		current: gs.current,
		outcome: gs.outcome,
	}
}

// Result reports the outcome from player's perspective, or NotTerminal
// while the game is still in progress.
func (gs *GameState) Result(player Player) Result {
	switch gs.outcome.Status {
	case Won:
		if gs.outcome.Winner == player {
			return Win
		}
		return Loss
	case Drawn:
		return Draw
	}
	return NotTerminal
}

// Hash digests the cell contents and the player to move.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.current))
	for col := 0; col < gs.width; col++ {
		for row := 0; row < gs.height; row++ {
			binary.Write(hasher, binary.LittleEndian, int64(gs.board.At(col, row)))
		}
	}

	return StateHash(hasher.Sum64())
}
