package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// styleFunc returns the style of the rune at byte offset i.
type styleFunc func(i int) tcell.Style

// drawText draws s on row y, skipping the first skip display columns and
// clipping at width columns starting from screen column x. Text is walked
// by grapheme cluster with the same widths the cursor column uses. Tabs
// expand to tabWidth stops. It returns the number of display columns s
// occupies.
func drawText(s tcell.Screen, x, y, skip, width, tabWidth int, text string, style styleFunc) int {
	col, off := 0, 0
	state := -1
	for len(text) > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		st := style(off)
		off += len(cluster)

		if cluster == "\t" {
			n := tabStop(col, tabWidth)
			for k := 0; k < n; k++ {
				if c := col + k - skip; c >= 0 && c < width {
					s.SetContent(x+c, y, ' ', nil, st)
				}
			}
			col += n
			continue
		}
		if w == 0 {
			continue
		}

		c := col - skip
		switch {
		case c >= 0 && c+w <= width:
			drawCluster(s, x+c, y, w, cluster, st)
		case c >= 0 && c < width:
			// A wide cluster cut by the right edge.
			fill(s, y, x+c, x+width, st)
		case c < 0 && c+w > 0:
			// A wide cluster cut by the left edge.
			fill(s, y, x, x+c+w, st)
		}
		col += w
	}
	return col
}

// drawCluster puts one grapheme cluster of width w at column x. Cells the
// cluster's base rune does not cover are blanked so stale content cannot
// show through.
func drawCluster(s tcell.Screen, x, y, w int, cluster string, st tcell.Style) {
	runes := []rune(cluster)
	s.SetContent(x, y, runes[0], runes[1:], st)
	mw := runewidth.RuneWidth(runes[0])
	if mw < 1 {
		mw = 1
	}
	if mw < w {
		fill(s, y, x+mw, x+w, st)
	}
}

// fill clears columns [from, to) of row y with style.
func fill(s tcell.Screen, y, from, to int, style tcell.Style) {
	for x := from; x < to; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// textWidth returns the display width of text with tabs at tabWidth stops,
// measured by grapheme cluster.
func textWidth(text string, tabWidth int) int {
	col := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if cluster == "\t" {
			w = tabStop(col, tabWidth)
		}
		col += w
	}
	return col
}

func tabStop(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - col%tabWidth
}
