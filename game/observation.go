package game

// Observation plane indices. Every player sees their own chips in
// PlaneSelf and the opponent's in PlaneOpponent regardless of physical
// identity, so one network or policy layout serves both seats.
const (
	PlaneSelf = iota
	PlaneOpponent
	PlaneEmpty
	NumPlanes
)

// Observation is an egocentric one-hot projection of the board for one
// player: binary planes indexed [plane][column][row].
type Observation struct {
	Player Player
	Planes [NumPlanes][][]uint8
}

// ObservationFor builds player's view of the current board. It is a pure
// read-only projection: the planes share no storage with the board.
func (gs *GameState) ObservationFor(player Player) Observation {
	obs := Observation{Player: player}
	for plane := range obs.Planes {
		obs.Planes[plane] = make([][]uint8, gs.width)
		for col := 0; col < gs.width; col++ {
			obs.Planes[plane][col] = make([]uint8, gs.height)
		}
	}

	for col := 0; col < gs.width; col++ {
		for row := 0; row < gs.height; row++ {
			switch gs.board.At(col, row) {
			case NoPlayer:
				obs.Planes[PlaneEmpty][col][row] = 1
			case player:
				obs.Planes[PlaneSelf][col][row] = 1
			default:
				obs.Planes[PlaneOpponent][col][row] = 1
			}
		}
	}
	return obs
}
