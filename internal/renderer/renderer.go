package renderer

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/taskpad/internal/editor"
	"github.com/dshills/taskpad/internal/engine/document"
	"github.com/dshills/taskpad/internal/search"
)

// Source is the editor state the renderer reads. *editor.Editor
// implements it.
type Source interface {
	Document() *document.Document
	Cursor() document.Position
	Mode() editor.Mode
	Status() string
	Selection() (start, end document.Position, ok bool)
	Matches() []search.Match
	TabWidth() int
}

// Options configures the renderer.
type Options struct {
	// TaskPaneRatio is the share of the height used by the list pane.
	TaskPaneRatio float64

	// ShowLineNumbers enables the line number gutter.
	ShowLineNumbers bool

	// ScrollMargin is the number of lines kept visible around the cursor.
	ScrollMargin int

	Theme Theme
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		TaskPaneRatio: 0.4,
		ScrollMargin:  2,
		Theme:         DefaultTheme(),
	}
}

// Renderer draws frames. It keeps the scroll position of the text area
// between frames.
type Renderer struct {
	screen tcell.Screen
	opts   Options

	top  int // first visible line
	left int // first visible display column
}

// New creates a renderer for screen.
func New(screen tcell.Screen, opts Options) *Renderer {
	return &Renderer{screen: screen, opts: opts}
}

// SetOptions replaces the options.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// ScrollTop returns the first visible document line.
func (r *Renderer) ScrollTop() int {
	return r.top
}

// Layout describes the rows of one frame.
type Layout struct {
	Width, Height int

	TextRows int // rows 0..TextRows-1
	PaneRows int // rows TextRows..TextRows+PaneRows-1, header included
	Status   int // status row
}

// Layout computes the layout for the current screen size and mode.
func (r *Renderer) Layout(mode editor.Mode) Layout {
	w, h := r.screen.Size()
	l := Layout{Width: w, Height: h, Status: max(h-1, 0)}
	avail := max(h-1, 0)
	switch mode.(type) {
	case *editor.TaskSelection, *editor.FuzzySearch:
		ratio := r.opts.TaskPaneRatio
		if ratio <= 0 || ratio >= 1 {
			ratio = 0.4
		}
		l.PaneRows = min(max(int(float64(avail)*ratio), 2), avail)
	}
	l.TextRows = avail - l.PaneRows
	return l
}

// PaneItemRows returns the number of list rows visible in the pane.
func (r *Renderer) PaneItemRows(mode editor.Mode) int {
	return max(r.Layout(mode).PaneRows-1, 0)
}

// TextRows returns the number of document rows visible in mode.
func (r *Renderer) TextRows(mode editor.Mode) int {
	return r.Layout(mode).TextRows
}

// Render draws a full frame. title is shown at the right of the status
// line.
func (r *Renderer) Render(src Source, title string) {
	mode := src.Mode()
	l := r.Layout(mode)
	r.screen.Clear()

	gutter := r.gutterWidth(src.Document().LineCount())
	r.scrollToCursor(src, l, gutter)
	r.drawLines(src, l, gutter)

	switch m := mode.(type) {
	case *editor.TaskSelection:
		r.drawTaskPane(m, l)
	case *editor.FuzzySearch:
		r.drawFuzzyPane(m, l)
	}

	statusEnd := r.drawStatus(src, l, title)
	r.placeCursor(src, l, gutter, statusEnd)
	r.screen.Show()
}

func (r *Renderer) tabWidth(src Source) int {
	if tw := src.TabWidth(); tw > 0 {
		return tw
	}
	return editor.DefaultTabWidth
}

func (r *Renderer) gutterWidth(lines int) int {
	if !r.opts.ShowLineNumbers {
		return 0
	}
	return len(strconv.Itoa(lines)) + 1
}

// scrollToCursor adjusts the scroll offsets so the cursor is visible.
func (r *Renderer) scrollToCursor(src Source, l Layout, gutter int) {
	if l.TextRows <= 0 {
		return
	}
	cur := src.Cursor()
	margin := min(r.opts.ScrollMargin, (l.TextRows-1)/2)
	if cur.Line < r.top+margin {
		r.top = max(cur.Line-margin, 0)
	}
	if cur.Line >= r.top+l.TextRows-margin {
		r.top = cur.Line - l.TextRows + margin + 1
	}
	r.top = max(min(r.top, src.Document().LineCount()-1), 0)

	width := l.Width - gutter
	if width <= 0 {
		return
	}
	x := src.Document().DisplayColumn(cur.Line, cur.Column, r.tabWidth(src))
	if x < r.left {
		r.left = x
	}
	if x >= r.left+width {
		r.left = x - width + 1
	}
}

func (r *Renderer) drawLines(src Source, l Layout, gutter int) {
	doc := src.Document()
	theme := r.opts.Theme
	width := l.Width - gutter
	selStart, selEnd, hasSel := src.Selection()
	matches := src.Matches()

	var current *search.Match
	if s, ok := src.Mode().(*editor.Search); ok {
		current = s.Match
	}

	for row := 0; row < l.TextRows; row++ {
		line := r.top + row
		if line >= doc.LineCount() {
			break
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, line+1)
			drawText(r.screen, 0, row, 0, gutter, 1, num, func(int) tcell.Style { return theme.LineNumber })
		}

		lineMatches := matchesOn(matches, line)
		style := func(i int) tcell.Style {
			p := document.Position{Line: line, Column: i}
			if hasSel && !p.Before(selStart) && p.Before(selEnd) {
				return theme.Selection
			}
			if current != nil && current.Pos.Line == line && i >= current.Pos.Column && i < current.Pos.Column+current.Len {
				return theme.CurrentMatch
			}
			for _, m := range lineMatches {
				if i >= m.Pos.Column && i < m.Pos.Column+m.Len {
					return theme.Match
				}
			}
			return theme.Text
		}
		drawText(r.screen, gutter, row, r.left, width, r.tabWidth(src), doc.Line(line), style)
	}
}

func matchesOn(ms []search.Match, line int) []search.Match {
	var out []search.Match
	for _, m := range ms {
		if m.Pos.Line == line {
			out = append(out, m)
		}
	}
	return out
}

func (r *Renderer) drawStatus(src Source, l Layout, title string) int {
	if l.Height == 0 {
		return 0
	}
	theme := r.opts.Theme
	st := theme.Status
	if s, ok := src.Mode().(*editor.Search); ok && s.Failed {
		st = theme.StatusError
	}
	fill(r.screen, l.Status, 0, l.Width, st)

	text := src.Status()
	if text == "" {
		text = src.Mode().DisplayName()
	}
	end := drawText(r.screen, 0, l.Status, 0, l.Width, 1, text, func(int) tcell.Style { return st })

	if title != "" {
		cur := src.Cursor()
		right := fmt.Sprintf(" %s  %d:%d ", title, cur.Line+1, cur.Column+1)
		if x := l.Width - textWidth(right, 1); x > end {
			drawText(r.screen, x, l.Status, 0, l.Width-x, 1, right, func(int) tcell.Style { return st })
		}
	}
	return end
}

func (r *Renderer) placeCursor(src Source, l Layout, gutter, statusEnd int) {
	switch src.Mode().(type) {
	case *editor.Search, *editor.FuzzySearch:
		r.screen.ShowCursor(min(statusEnd, l.Width-1), l.Status)
		return
	}
	cur := src.Cursor()
	row := cur.Line - r.top
	x := src.Document().DisplayColumn(cur.Line, cur.Column, r.tabWidth(src)) - r.left + gutter
	if row < 0 || row >= l.TextRows || x < gutter || x >= l.Width {
		r.screen.HideCursor()
		return
	}
	r.screen.ShowCursor(x, row)
}
