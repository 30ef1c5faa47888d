package game

import (
	"strings"

	"github.com/fatih/color"
)

// Render returns the board as text for display collaborators: one line
// per row, top row first, one glyph per cell ('.' empty, 'X' Player1,
// 'O' Player2). Colors degrade to plain glyphs on non-terminal outputs.
func (gs *GameState) Render() string {
	glyphs := map[Player]string{
		NoPlayer: color.WhiteString("."),
		Player1:  color.RedString("X"),
		Player2:  color.YellowString("O"),
	}

	var sb strings.Builder
	for row := gs.height - 1; row >= 0; row-- {
		for col := 0; col < gs.width; col++ {
			sb.WriteString(glyphs[gs.board.At(col, row)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
