package history

import "github.com/dshills/taskpad/internal/engine/document"

// Position is an alias for document.Position for convenience.
type Position = document.Position

// Applier is the mutation primitive records are replayed through.
// *document.Document implements it.
type Applier interface {
	Modify(pos Position, added, deleted string, isUndo bool) (Position, error)
}

// Cursor holds the cursor position around an edit.
type Cursor struct {
	Before Position
	After  Position
}

// Record represents a single reversible edit.
type Record struct {
	Pos     Position // Where the edit starts
	Added   string   // Text inserted at Pos
	Deleted string   // Text removed from Pos

	cursor    Cursor
	hasCursor bool
}

// NewRecord creates a record without cursor information.
func NewRecord(pos Position, added, deleted string) Record {
	return Record{Pos: pos, Added: added, Deleted: deleted}
}

// NewInsertRecord creates a record for a pure insertion.
func NewInsertRecord(pos Position, text string) Record {
	return Record{Pos: pos, Added: text}
}

// NewDeleteRecord creates a record for a pure deletion.
func NewDeleteRecord(pos Position, text string) Record {
	return Record{Pos: pos, Deleted: text}
}

// WithCursor sets the cursor state and returns the record for chaining.
func (r Record) WithCursor(before, after Position) Record {
	r.cursor = Cursor{Before: before, After: after}
	r.hasCursor = true
	return r
}

// Cursor returns the cursor state and whether it was set.
func (r Record) Cursor() (Cursor, bool) {
	return r.cursor, r.hasCursor
}

// IsInsert returns true if this record is a pure insertion.
func (r Record) IsInsert() bool {
	return r.Deleted == "" && r.Added != ""
}

// IsDelete returns true if this record is a pure deletion.
func (r Record) IsDelete() bool {
	return r.Added == "" && r.Deleted != ""
}

// IsNoop returns true if this record makes no changes.
func (r Record) IsNoop() bool {
	return r.Added == r.Deleted
}

// End returns the position after the added text once the record is applied.
func (r Record) End() Position {
	return r.Pos.Advance(r.Added)
}

// Invert returns a record that undoes this one.
func (r Record) Invert() Record {
	inv := Record{Pos: r.Pos, Added: r.Deleted, Deleted: r.Added}
	if r.hasCursor {
		inv = inv.WithCursor(r.cursor.After, r.cursor.Before)
	}
	return inv
}

// Apply replays the record through a. With isUndo set the record is
// reversed. The returned position is the cursor hint when one is set, or
// the position Modify produced.
func (r Record) Apply(a Applier, isUndo bool) (Position, error) {
	pos, err := a.Modify(r.Pos, r.Added, r.Deleted, isUndo)
	if err != nil {
		return pos, err
	}
	if r.hasCursor {
		if isUndo {
			return r.cursor.Before, nil
		}
		return r.cursor.After, nil
	}
	return pos, nil
}

// Group is an ordered, non-empty list of records undone and redone as one unit.
type Group []Record

// Invert returns the inverse records in reverse order.
func (g Group) Invert() Group {
	out := make(Group, len(g))
	for i, r := range g {
		out[len(g)-1-i] = r.Invert()
	}
	return out
}
