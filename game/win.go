package game

// The four axes a run can lie on: horizontal, diagonal-up, vertical,
// diagonal-down. The opposite directions are covered by the backward scan.
var runAxes = [4][2]int{{1, 0}, {1, 1}, {0, 1}, {1, -1}}

// winsAt reports whether the chip at (col, row) completes a run of at
// least connect same-owner cells along any axis. For each axis it counts
// p contiguous cells forward and n backward, both counts starting at 1 so
// the placed chip is counted twice; a win therefore needs
// p + n >= connect + 1. Extension stops at the board boundary.
func winsAt(b *Board, col, row, connect int) bool {
	owner := b.At(col, row)
	if owner == NoPlayer {
		return false
	}

	for _, axis := range runAxes {
		dc, dr := axis[0], axis[1]

		p := 1
		for b.onBoard(col+p*dc, row+p*dr) && b.At(col+p*dc, row+p*dr) == owner {
			p++
		}
		n := 1
		for b.onBoard(col-n*dc, row-n*dr) && b.At(col-n*dc, row-n*dr) == owner {
			n++
		}

		if p+n >= connect+1 {
			return true
		}
	}
	return false
}
