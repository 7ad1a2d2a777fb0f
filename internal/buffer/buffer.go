// Package buffer holds the document being edited as an ordered list of
// rows. Each row keeps both its raw bytes and a derived render form with
// tabs expanded, so callers address positions either by chars index (cx)
// or by screen column (rx). All mutating operations clamp out-of-range
// positions and rebuild the affected render forms before returning.
package buffer

import "bytes"

// Buffer is the in-memory document. The zero value is not usable; call New.
type Buffer struct {
	rows     []*row
	tabWidth int
	revision uint64
}

// New returns an empty document. tabWidth values below 1 fall back to
// DefaultTabWidth.
func New(tabWidth int) *Buffer {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &Buffer{tabWidth: tabWidth}
}

// NumRows reports how many rows the document holds.
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// TabWidth reports the tab stop interval render forms were built with.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// Revision reports a counter that increases on every mutation. Comparing
// revisions taken at two points tells whether the document changed in
// between; the counter never decreases.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// RowLen reports the length in bytes of row cy, or 0 when cy is out of range.
func (b *Buffer) RowLen(cy int) int {
	if cy < 0 || cy >= len(b.rows) {
		return 0
	}
	return len(b.rows[cy].chars)
}

// Line returns the raw contents of row cy, or "" when cy is out of range.
func (b *Buffer) Line(cy int) string {
	if cy < 0 || cy >= len(b.rows) {
		return ""
	}
	return string(b.rows[cy].chars)
}

// RenderLine returns the display form of row cy, tabs expanded, or ""
// when cy is out of range.
func (b *Buffer) RenderLine(cy int) string {
	if cy < 0 || cy >= len(b.rows) {
		return ""
	}
	return string(b.rows[cy].render)
}

// RenderLen reports the display width in columns of row cy, or 0 when cy
// is out of range.
func (b *Buffer) RenderLen(cy int) int {
	if cy < 0 || cy >= len(b.rows) {
		return 0
	}
	return len(b.rows[cy].render)
}

// CxToRx maps a chars index in row cy to its screen column. For cy out of
// range the row is treated as empty and cx maps to 0.
func (b *Buffer) CxToRx(cy, cx int) int {
	if cy < 0 || cy >= len(b.rows) {
		return 0
	}
	return b.rows[cy].cxToRx(cx, b.tabWidth)
}

// InsertRow inserts line as a new row at index at. at is clamped to
// [0, NumRows], so inserting at NumRows appends.
func (b *Buffer) InsertRow(at int, line string) {
	if at < 0 {
		at = 0
	}
	if at > len(b.rows) {
		at = len(b.rows)
	}
	r := &row{chars: []byte(line)}
	r.updateRender(b.tabWidth)
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = r
	b.revision++
}

// DeleteRow removes row at. Out-of-range indexes are ignored.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	b.revision++
}

// InsertChar inserts byte c into row cy before index cx. cx is clamped to
// the row length; a cy with no row is ignored.
func (b *Buffer) InsertChar(cy, cx int, c byte) {
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	r := b.rows[cy]
	if cx < 0 || cx > len(r.chars) {
		cx = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[cx+1:], r.chars[cx:])
	r.chars[cx] = c
	r.updateRender(b.tabWidth)
	b.revision++
}

// DeleteChar removes the byte at index cx of row cy. Positions with no
// byte are ignored, so deleting at the end of a row is a no-op.
func (b *Buffer) DeleteChar(cy, cx int) {
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	r := b.rows[cy]
	if cx < 0 || cx >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:cx], r.chars[cx+1:]...)
	r.updateRender(b.tabWidth)
	b.revision++
}

// AppendString appends s to the end of row cy. A cy with no row is ignored.
func (b *Buffer) AppendString(cy int, s string) {
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	r := b.rows[cy]
	r.chars = append(r.chars, s...)
	r.updateRender(b.tabWidth)
	b.revision++
}

// SplitRow breaks row cy in two at index cx: the bytes before cx stay in
// row cy and the rest become a new row cy+1. Splitting at 0 or at the row
// end yields an empty row. A cy with no row is ignored.
func (b *Buffer) SplitRow(cy, cx int) {
	if cy < 0 || cy >= len(b.rows) {
		return
	}
	r := b.rows[cy]
	if cx < 0 {
		cx = 0
	}
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rest := string(r.chars[cx:])
	r.chars = r.chars[:cx]
	r.updateRender(b.tabWidth)
	b.InsertRow(cy+1, rest)
}

// JoinRows appends row cy onto row cy-1 and removes row cy, undoing a
// split. cy values without a preceding row are ignored.
func (b *Buffer) JoinRows(cy int) {
	if cy < 1 || cy >= len(b.rows) {
		return
	}
	prev := b.rows[cy-1]
	prev.chars = append(prev.chars, b.rows[cy].chars...)
	prev.updateRender(b.tabWidth)
	b.DeleteRow(cy)
}

// Serialize renders the whole document as a byte slice, each row followed
// by a newline. An empty document serializes to an empty slice.
func (b *Buffer) Serialize() []byte {
	var out bytes.Buffer
	for _, r := range b.rows {
		out.Write(r.chars)
		out.WriteByte('\n')
	}
	return out.Bytes()
}
