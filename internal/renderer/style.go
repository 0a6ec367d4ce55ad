package renderer

import "github.com/gdamore/tcell/v2"

// Theme holds the styles used for each element.
type Theme struct {
	Text         tcell.Style
	LineNumber   tcell.Style
	Selection    tcell.Style
	Match        tcell.Style
	CurrentMatch tcell.Style
	Status       tcell.Style
	StatusError  tcell.Style
	PaneHeader   tcell.Style
	PaneItem     tcell.Style
	PaneSelected tcell.Style
	FuzzyHit     tcell.Style
}

// DefaultTheme returns styles that work on 8-color terminals.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Text:         base,
		LineNumber:   base.Dim(true),
		Selection:    base.Reverse(true),
		Match:        base.Background(tcell.ColorOlive).Foreground(tcell.ColorBlack),
		CurrentMatch: base.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true),
		Status:       base.Reverse(true),
		StatusError:  base.Reverse(true).Foreground(tcell.ColorMaroon),
		PaneHeader:   base.Bold(true).Underline(true),
		PaneItem:     base,
		PaneSelected: base.Reverse(true),
		FuzzyHit:     base.Bold(true).Foreground(tcell.ColorTeal),
	}
}
