package editor

import (
	"errors"
	"unicode/utf8"

	"github.com/dshills/taskpad/internal/search"
)

// BeginSearch enters incremental search in direction dir, anchored at the
// cursor.
func (e *Editor) BeginSearch(dir search.Direction) error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	e.resetAction()
	s := &Search{Direction: dir, Anchor: e.cursor}
	e.setMode(s)
	e.status = s.DisplayName() + ": "
	return nil
}

func (e *Editor) searchMode() (*Search, error) {
	s, ok := e.mode.(*Search)
	if !ok {
		return nil, ErrInvalidMode
	}
	return s, nil
}

// UpdateQuery replaces the search query and moves the cursor to the
// nearest match: from the current match inclusive when there is one,
// otherwise strictly from the anchor. An empty query returns the cursor to
// the anchor. When nothing matches the cursor stays and ErrNoMatch is
// returned; the query is kept.
func (e *Editor) UpdateQuery(query string) error {
	s, err := e.searchMode()
	if err != nil {
		return err
	}
	s.Query = query
	if query == "" {
		s.Match, s.Failed = nil, false
		e.setCursor(s.Anchor)
		e.searchStatus(s)
		return nil
	}

	from, inclusive := s.Anchor, false
	if s.Match != nil {
		from, inclusive = s.Match.Pos, true
	}
	return e.searchFrom(s, from, s.Direction, inclusive)
}

// AppendQuery adds text to the search query.
func (e *Editor) AppendQuery(text string) error {
	s, err := e.searchMode()
	if err != nil {
		return err
	}
	return e.UpdateQuery(s.Query + text)
}

// BackspaceQuery removes the last character of the search query.
func (e *Editor) BackspaceQuery() error {
	s, err := e.searchMode()
	if err != nil {
		return err
	}
	if s.Query == "" {
		return nil
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	return e.UpdateQuery(s.Query[:len(s.Query)-size])
}

// SearchNext moves to the next match after the current one.
func (e *Editor) SearchNext() error {
	return e.searchStep(search.Forward)
}

// SearchPrev moves to the previous match before the current one.
func (e *Editor) SearchPrev() error {
	return e.searchStep(search.Backward)
}

func (e *Editor) searchStep(dir search.Direction) error {
	s, err := e.searchMode()
	if err != nil {
		return err
	}
	if s.Query == "" {
		return nil
	}
	from := e.cursor
	if s.Match != nil {
		from = s.Match.Pos
	}
	return e.searchFrom(s, from, dir, false)
}

func (e *Editor) searchFrom(s *Search, from Position, dir search.Direction, inclusive bool) error {
	m, err := search.Find(e.doc, s.Query, from, dir, inclusive)
	if err != nil {
		if errors.Is(err, search.ErrNoMatch) {
			s.Failed = true
			e.searchStatus(s)
		}
		return err
	}
	s.Match, s.Failed = &m, false
	e.setCursor(m.Pos)
	e.searchStatus(s)
	return nil
}

func (e *Editor) searchStatus(s *Search) {
	msg := s.DisplayName() + ": " + s.Query
	switch {
	case s.Failed:
		msg += " (No match)"
	case s.Match != nil && s.Match.Wrapped:
		msg += " (wrapped)"
	}
	e.status = msg
}

// ConfirmSearch leaves the cursor at the current match and returns to
// Normal.
func (e *Editor) ConfirmSearch() error {
	if _, err := e.searchMode(); err != nil {
		return err
	}
	e.status = ""
	e.setMode(Normal{})
	return nil
}

// CancelSearch returns the cursor to the anchor and returns to Normal.
func (e *Editor) CancelSearch() error {
	s, err := e.searchMode()
	if err != nil {
		return err
	}
	e.setCursor(s.Anchor)
	e.status = ""
	e.setMode(Normal{})
	return nil
}

// Matches returns every occurrence of the active search query, for
// highlighting. It is empty outside search mode.
func (e *Editor) Matches() []search.Match {
	s, ok := e.mode.(*Search)
	if !ok || s.Query == "" {
		return nil
	}
	return search.All(e.doc, s.Query)
}
