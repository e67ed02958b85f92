package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle-share/internal/game"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

var (
	styleBase    = tcell.StyleDefault
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTBD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCorrect = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true)
	stylePresent = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleAbsent  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDimGray)
)

// cell is one positioned glyph.
type cell struct {
	x, y  int
	r     rune
	style tcell.Style
}

func tileStyle(s game.TileState) tcell.Style {
	switch s {
	case game.TileCorrect:
		return styleCorrect
	case game.TilePresent:
		return stylePresent
	case game.TileAbsent:
		return styleAbsent
	case game.TileTBD:
		return styleTBD
	}
	return styleEmpty
}

func keyStyle(r game.Result) tcell.Style {
	switch r {
	case game.Correct:
		return styleCorrect
	case game.Present:
		return stylePresent
	case game.Absent:
		return styleAbsent
	}
	return styleBase
}

func text(x, y int, s string, st tcell.Style) []cell {
	out := make([]cell, 0, len(s))
	for i, r := range []rune(s) {
		out = append(out, cell{x + i, y, r, st})
	}
	return out
}

// layout renders a snapshot into cells. Tiles are drawn as " X " blocks,
// the keyboard below the board, the status line at the bottom. setupLen is
// the number of masked secret letters typed so far (NotStarted only).
func layout(snap game.Snapshot, setupLen int, message string) []cell {
	var out []cell
	const left, top = 2, 1

	if snap.Phase == game.NotStarted {
		out = append(out, text(left, top, "Secret word:", styleBase)...)
		for i := 0; i < game.WordLength; i++ {
			r := '_'
			if i < setupLen {
				r = '*'
			}
			out = append(out, cell{left + 13 + 2*i, top, r, styleTBD})
		}
		return append(out, text(left, top+2, message, styleBase)...)
	}

	for row, tiles := range snap.Board {
		for col, t := range tiles {
			x, y := left+col*4, top+row*2
			st := tileStyle(t.State)
			letter := ' '
			if t.Letter != "" {
				letter = []rune(t.Letter)[0]
			} else if t.State == game.TileEmpty {
				letter = '·'
			}
			out = append(out, cell{x, y, ' ', st}, cell{x + 1, y, letter, st}, cell{x + 2, y, ' ', st})
		}
	}

	ky := top + game.MaxGuesses*2 + 1
	for i, row := range keyboardRows {
		x := left + i
		for _, k := range row {
			out = append(out, cell{x, ky + i, k, keyStyle(snap.Keys[string(k)])})
			x += 2
		}
	}

	return append(out, text(left, ky+len(keyboardRows)+1, message, styleBase)...)
}
