package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/taskpad/internal/editor"
)

func (r *Renderer) drawPaneHeader(l Layout, title string) {
	theme := r.opts.Theme
	y := l.TextRows
	fill(r.screen, y, 0, l.Width, theme.PaneHeader)
	drawText(r.screen, 0, y, 0, l.Width, 1, title, func(int) tcell.Style { return theme.PaneHeader })
}

func (r *Renderer) drawTaskPane(m *editor.TaskSelection, l Layout) {
	if l.PaneRows == 0 {
		return
	}
	theme := r.opts.Theme
	r.drawPaneHeader(l, fmt.Sprintf(" Tasks (%d/%d)", m.Selected+1, len(m.Tasks)))

	rows := l.PaneRows - 1
	for i := 0; i < rows; i++ {
		idx := m.Offset + i
		if idx >= len(m.Tasks) {
			break
		}
		y := l.TextRows + 1 + i
		st := theme.PaneItem
		if idx == m.Selected {
			st = theme.PaneSelected
			fill(r.screen, y, 0, l.Width, st)
		}
		t := m.Tasks[idx]
		text := fmt.Sprintf("%4d  %s", t.Line+1, t.Text)
		drawText(r.screen, 0, y, 0, l.Width, 1, text, func(int) tcell.Style { return st })
	}
}

func (r *Renderer) drawFuzzyPane(m *editor.FuzzySearch, l Layout) {
	if l.PaneRows == 0 {
		return
	}
	theme := r.opts.Theme
	r.drawPaneHeader(l, fmt.Sprintf(" Lines (%d)", len(m.Results)))

	rows := l.PaneRows - 1
	offset := 0
	if m.Selected >= rows {
		offset = m.Selected - rows + 1
	}
	for i := 0; i < rows; i++ {
		idx := offset + i
		if idx >= len(m.Results) {
			break
		}
		y := l.TextRows + 1 + i
		res := m.Results[idx]

		base := theme.PaneItem
		if idx == m.Selected {
			base = theme.PaneSelected
			fill(r.screen, y, 0, l.Width, base)
		}
		prefix := fmt.Sprintf("%4d  ", res.Line+1)
		x := drawText(r.screen, 0, y, 0, l.Width, 1, prefix, func(int) tcell.Style { return base })

		hits := make(map[int]bool, len(res.Matches))
		for _, off := range res.Matches {
			hits[off] = true
		}
		hit := theme.FuzzyHit
		if idx == m.Selected {
			hit = hit.Reverse(true)
		}
		drawText(r.screen, x, y, 0, l.Width-x, 1, res.Text, func(i int) tcell.Style {
			if hits[i] {
				return hit
			}
			return base
		})
	}
}
