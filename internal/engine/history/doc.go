// Package history provides undo/redo for the document edit engine.
//
// # Records
//
// A Record describes one reversible change: the position it starts at, the
// text it added and the text it deleted. Applying a Record forward and then
// in reverse restores the document exactly. A Record may also carry the
// cursor before and after the edit so undo can put the cursor back.
//
// # Groups
//
// Records are committed into groups. A commit joins the group on top of the
// undo stack when it arrives within the grouping interval of the previous
// commit and no break was signaled:
//
//	h := history.New(history.WithGroupingInterval(500 * time.Millisecond))
//	h.Commit(rec1, clock.Now())
//	h.Commit(rec2, clock.Now()) // same group when close enough in time
//	h.Break()                   // next commit starts a new group
//
// # Clock
//
// Time is always passed in by the caller. Production code reads a
// SystemClock; tests drive a ManualClock so grouping can be observed
// without real delays.
package history
