// Package document holds the text of a taskpad session as an ordered list of
// lines and provides the single mutation primitive used by every edit.
//
// A Document always contains at least one line. Lines never contain a line
// break; a break is the boundary between two lines. Positions are expressed as
// a line index and a byte column within that line:
//
//	doc := document.New("hello\nworld")
//	end, err := doc.Modify(document.Position{Line: 0, Column: 5}, ",\nbig", "", false)
//	// doc.Lines() == []string{"hello,", "big", "world"}, end == (1:3)
//
// Modify verifies the text it removes before touching the document, so a
// failed call leaves the content unchanged. Applying the same call with
// isUndo set reverses it exactly.
//
// Thread Safety:
//
// Document is owned by a single goroutine. It performs no locking; callers
// that share a Document must serialize access themselves.
package document
