// Package renderer draws the editor state onto a tcell screen.
//
// The screen is split into a text area, an optional list pane for task
// selection and fuzzy search, and a one-row status line at the bottom:
//
//	┌─────────────────────────────┐
//	│  text area (scrolled)       │
//	├─────────────────────────────┤
//	│  task / fuzzy pane          │  ← TaskPaneRatio of the height
//	├─────────────────────────────┤
//	│  status line                │
//	└─────────────────────────────┘
//
// The renderer only reads editor state. Scroll offsets of the text area
// are its own.
package renderer
