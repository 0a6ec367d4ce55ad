package editor

import (
	"unicode/utf8"

	"github.com/dshills/taskpad/internal/search/fuzzy"
)

// BeginFuzzySearch enters fuzzy search over all document lines. The
// initial result list holds every line in order.
func (e *Editor) BeginFuzzySearch() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	e.resetAction()
	r := fuzzy.NewRanker(e.doc.Lines(), fuzzy.DefaultOptions())
	e.setMode(&FuzzySearch{
		Results: r.Rank(""),
		Origin:  e.cursor,
		ranker:  r,
	})
	e.status = "Fuzzy: "
	return nil
}

func (e *Editor) fuzzyMode() (*FuzzySearch, error) {
	f, ok := e.mode.(*FuzzySearch)
	if !ok {
		return nil, ErrInvalidMode
	}
	return f, nil
}

// RankedResults sets the fuzzy query and returns the ranked lines, best
// first. The selection resets to the first result.
func (e *Editor) RankedResults(query string) ([]fuzzy.Result, error) {
	f, err := e.fuzzyMode()
	if err != nil {
		return nil, err
	}
	f.Query = query
	f.Results = f.ranker.Rank(query)
	f.Selected = 0
	e.status = "Fuzzy: " + query
	return f.Results, nil
}

// AppendFuzzyQuery adds text to the fuzzy query.
func (e *Editor) AppendFuzzyQuery(text string) error {
	f, err := e.fuzzyMode()
	if err != nil {
		return err
	}
	_, err = e.RankedResults(f.Query + text)
	return err
}

// BackspaceFuzzyQuery removes the last character of the fuzzy query.
func (e *Editor) BackspaceFuzzyQuery() error {
	f, err := e.fuzzyMode()
	if err != nil {
		return err
	}
	if f.Query == "" {
		return nil
	}
	_, size := utf8.DecodeLastRuneInString(f.Query)
	_, err = e.RankedResults(f.Query[:len(f.Query)-size])
	return err
}

// FuzzyUp selects the previous result, wrapping to the last.
func (e *Editor) FuzzyUp() error {
	f, err := e.fuzzyMode()
	if err != nil {
		return err
	}
	if n := len(f.Results); n > 0 {
		f.Selected = (f.Selected - 1 + n) % n
	}
	return nil
}

// FuzzyDown selects the next result, wrapping to the first.
func (e *Editor) FuzzyDown() error {
	f, err := e.fuzzyMode()
	if err != nil {
		return err
	}
	if n := len(f.Results); n > 0 {
		f.Selected = (f.Selected + 1) % n
	}
	return nil
}

// ConfirmFuzzy moves the cursor to the start of the selected line and
// returns to Normal. With no results the cursor is restored.
func (e *Editor) ConfirmFuzzy() error {
	f, err := e.fuzzyMode()
	if err != nil {
		return err
	}
	if r, ok := f.Current(); ok {
		e.setCursor(Position{Line: r.Line})
	} else {
		e.setCursor(f.Origin)
	}
	e.status = ""
	e.setMode(Normal{})
	return nil
}

// CancelFuzzy restores the cursor and returns to Normal.
func (e *Editor) CancelFuzzy() error {
	f, err := e.fuzzyMode()
	if err != nil {
		return err
	}
	e.setCursor(f.Origin)
	e.status = ""
	e.setMode(Normal{})
	return nil
}
