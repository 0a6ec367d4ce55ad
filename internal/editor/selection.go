package editor

// SetMarker starts a selection at the cursor.
func (e *Editor) SetMarker() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	m := e.cursor
	e.marker = &m
	e.resetAction()
	e.status = "Mark set."
	return nil
}

// ClearMarker cancels the selection.
func (e *Editor) ClearMarker() {
	e.marker = nil
}

// Marker returns the selection marker, if set.
func (e *Editor) Marker() (Position, bool) {
	if e.marker == nil {
		return Position{}, false
	}
	return *e.marker, true
}

// Selection returns the ordered range between the marker and the cursor.
// ok is false when no marker is set or the range is empty.
func (e *Editor) Selection() (start, end Position, ok bool) {
	if e.marker == nil {
		return Position{}, Position{}, false
	}
	m := e.doc.Clamp(*e.marker)
	start, end = m, e.cursor
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, start != end
}

// CopySelection copies the selection to the kill buffer and clipboard and
// clears the marker.
func (e *Editor) CopySelection() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	start, end, ok := e.Selection()
	if !ok {
		return ErrNoSelection
	}
	text, err := e.doc.TextRange(start, end)
	if err != nil {
		return err
	}
	e.killBuffer = text
	e.writeClipboard(text)
	e.marker = nil
	e.resetAction()
	e.status = "Copied."
	return nil
}

// CutSelection deletes the selection into the kill buffer and clipboard.
func (e *Editor) CutSelection() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	start, end, ok := e.Selection()
	if !ok {
		return ErrNoSelection
	}
	text, err := e.doc.TextRange(start, end)
	if err != nil {
		return err
	}
	if err := e.edit(actionDelete, start, "", text); err != nil {
		return err
	}
	e.killBuffer = text
	e.writeClipboard(text)
	e.marker = nil
	e.status = "Cut."
	return nil
}
