package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"connect4/game"
)

// Random plays a uniformly random legal column. It is the baseline caller
// for matches and self-play throughput runs.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent with its own seeded source, so
// concurrent agents never share generator state.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(state *game.GameState) (int, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, fmt.Errorf("no legal moves for %s", state.Player())
	}
	return moves[a.rng.Intn(len(moves))], nil
}
