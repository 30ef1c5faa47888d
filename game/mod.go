package game

// Shared identity and result types for the engine. Agents and other
// collaborators only ever see these plus GameState's method set.

// StateHash identifies a position for callers keying transposition tables.
type StateHash uint64

// Player identifies one of the two players. NoPlayer doubles as the owner
// of an empty cell.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Other returns the opposing player.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// Index returns the player's slot in reward and observation vectors:
// 0 for Player1, 1 for Player2.
func (p Player) Index() int {
	return int(p) - 1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "NoPlayer"
}

// Status is the phase of an Outcome.
type Status uint8

const (
	InProgress Status = iota
	Won
	Drawn
)

// Outcome is the tagged game result: the game is in progress, won by a
// specific player, or drawn. It transitions monotonically from InProgress
// to Won or Drawn and never changes once terminal.
type Outcome struct {
	Status Status
	Winner Player // set only when Status == Won
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	switch o.Status {
	case Won:
		return o.Winner.String()
	case Drawn:
		return "Draw"
	}
	return "InProgress"
}

// Result is an outcome seen from one player's perspective.
type Result int8

const (
	NotTerminal Result = iota
	Win
	Loss
	Draw
)

// Score projects the result onto the zero-sum reward scale: +1 for a win,
// -1 for a loss, 0 for a draw or an unfinished game.
func (r Result) Score() float64 {
	switch r {
	case Win:
		return 1
	case Loss:
		return -1
	}
	return 0
}

func (r Result) String() string {
	switch r {
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	}
	return "NotTerminal"
}
