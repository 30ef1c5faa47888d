package game

// Board is a fixed-size grid of columns filled bottom-up. Cells are
// indexed [column][row] with row 0 at the bottom, so a dropped chip always
// lands at the lowest empty row of its column and occupied cells are
// contiguous from row 0 upward.
type Board struct {
	width  int
	height int
	cells  [][]Player
}

func newBoard(width, height int) *Board {
	cells := make([][]Player, width)
	for col := range cells {
		cells[col] = make([]Player, height)
	}
	return &Board{width: width, height: height, cells: cells}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// At returns the owner of the cell at (col, row), or NoPlayer for an
// empty cell. Row 0 is the bottom row.
func (b *Board) At(col, row int) Player {
	return b.cells[col][row]
}

func (b *Board) onBoard(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// columnOpen reports whether the column still has room for a chip.
func (b *Board) columnOpen(col int) bool {
	return b.cells[col][b.height-1] == NoPlayer
}

// drop places a chip for p in the lowest empty row of col and returns the
// landing row. The caller must check columnOpen first.
func (b *Board) drop(col int, p Player) int {
	for row := 0; row < b.height; row++ {
		if b.cells[col][row] == NoPlayer {
			b.cells[col][row] = p
			return row
		}
	}
	panic("drop on a full column")
}

// clone returns a deep copy sharing no storage with b.
func (b *Board) clone() *Board {
	c := newBoard(b.width, b.height)
	for col := range b.cells {
		copy(c.cells[col], b.cells[col])
	}
	return c
}
