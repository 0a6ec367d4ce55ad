package document

import "github.com/rivo/uniseg"

// NextGrapheme returns the position after the grapheme cluster at pos.
// At the end of a line it moves to the start of the next line; at the end
// of the document it returns pos unchanged.
func (d *Document) NextGrapheme(pos Position) Position {
	pos = d.Clamp(pos)
	line := d.lines[pos.Line]
	if pos.Column >= len(line) {
		if pos.Line+1 < len(d.lines) {
			return Position{Line: pos.Line + 1}
		}
		return pos
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(line[pos.Column:], -1)
	pos.Column += len(cluster)
	return pos
}

// PrevGrapheme returns the start of the grapheme cluster before pos.
// At the start of a line it moves to the end of the previous line.
func (d *Document) PrevGrapheme(pos Position) Position {
	pos = d.Clamp(pos)
	if pos.Column == 0 {
		if pos.Line > 0 {
			return Position{Line: pos.Line - 1, Column: len(d.lines[pos.Line-1])}
		}
		return pos
	}
	pos.Column = prevBoundary(d.lines[pos.Line], pos.Column)
	return pos
}

// prevBoundary returns the start of the cluster that ends at or spans col.
func prevBoundary(line string, col int) int {
	start, offset := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 && offset < col {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		start = offset
		offset += len(cluster)
	}
	return start
}

// DisplayColumn returns the screen column of byte column col on line i,
// expanding tabs to tabWidth stops and counting wide clusters as two cells.
func (d *Document) DisplayColumn(i, col, tabWidth int) int {
	line := d.Line(i)
	if col > len(line) {
		col = len(line)
	}
	return displayWidth(line[:col], tabWidth)
}

// ColumnAtDisplay returns the byte column on line i whose display column is
// the greatest one not exceeding x. It never splits a grapheme cluster.
func (d *Document) ColumnAtDisplay(i, x, tabWidth int) int {
	line := d.Line(i)
	width, offset := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			w = tabStop(width, tabWidth)
		}
		if width+w > x {
			break
		}
		width += w
		offset += len(cluster)
	}
	return offset
}

// displayWidth returns the cell width of s.
func displayWidth(s string, tabWidth int) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			w = tabStop(width, tabWidth)
		}
		width += w
	}
	return width
}

func tabStop(width, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - width%tabWidth
}
