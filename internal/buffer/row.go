package buffer

// DefaultTabWidth is the column interval tab stops fall on.
const DefaultTabWidth = 8

// row is a single line of the document. chars holds the raw bytes exactly as
// loaded or edited. render is derived from chars and holds the display form,
// with every tab expanded to spaces up to the next tab stop. Each rendered
// byte occupies one screen column, so indexes into render are screen columns.
type row struct {
	chars  []byte
	render []byte
}

// updateRender rebuilds the display form. Must be called after every
// mutation of chars; all Buffer operations do so before returning.
func (r *row) updateRender(tabWidth int) {
	out := r.render[:0]
	for _, c := range r.chars {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%tabWidth != 0 {
				out = append(out, ' ')
			}
		} else {
			out = append(out, c)
		}
	}
	r.render = out
}

// cxToRx maps a chars index to the matching render index. A tab advances
// the render column to the next multiple of tabWidth; every other byte
// advances it by one. cx past the end of the row is clamped.
func (r *row) cxToRx(cx, tabWidth int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		if r.chars[i] == '\t' {
			rx += (tabWidth - 1) - (rx % tabWidth)
		}
		rx++
	}
	return rx
}
