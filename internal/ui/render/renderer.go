// Package render composes full terminal frames from editor state. Every
// frame is built as one byte slice so the caller can hand it to the
// terminal in a single write: hide cursor, repaint every row, restore the
// cursor. Rows are cleared with erase-to-end-of-line as they are drawn
// instead of wiping the whole screen, which keeps repaints flicker-free.
package render

import (
	"bytes"
	"fmt"
	"time"

	statepkg "github.com/ked-lab/ked/internal/state"
)

// Version is the editor's release string. The welcome banner and the
// version flag both show it.
const Version = "0.1.0"

type Renderer struct {
	buf bytes.Buffer
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Frame renders the current state. The returned slice is reused by the
// next call, so write it out before rendering again.
func (r *Renderer) Frame(state *statepkg.EditorState) []byte {
	return r.FrameAt(state, time.Now())
}

// FrameAt is Frame with an explicit clock, which keeps message expiry
// testable.
func (r *Renderer) FrameAt(state *statepkg.EditorState, now time.Time) []byte {
	state.ReconcileViewport()

	r.buf.Reset()
	r.buf.WriteString("\x1b[?25l")
	r.buf.WriteString("\x1b[H")

	r.drawRows(state)
	r.drawStatusBar(state)
	r.drawMessageLine(state, now)

	fmt.Fprintf(&r.buf, "\x1b[%d;%dH",
		(state.Cy-state.RowOffset)+1,
		(state.Rx-state.ColOffset)+1)
	r.buf.WriteString("\x1b[?25h")

	return r.buf.Bytes()
}

func (r *Renderer) drawRows(state *statepkg.EditorState) {
	for y := 0; y < state.ScreenRows; y++ {
		fileRow := y + state.RowOffset
		if fileRow >= state.Buf.NumRows() {
			if state.Buf.NumRows() == 0 && y == state.ScreenRows/3 {
				r.drawWelcome(state)
			} else {
				r.buf.WriteByte('~')
			}
		} else {
			r.drawTextRow(state, fileRow)
		}
		r.buf.WriteString("\x1b[K")
		r.buf.WriteString("\r\n")
	}
}

// drawTextRow writes the slice of the row's render form that falls inside
// the horizontal viewport.
func (r *Renderer) drawTextRow(state *statepkg.EditorState, fileRow int) {
	line := state.Buf.RenderLine(fileRow)
	start := state.ColOffset
	if start > len(line) {
		start = len(line)
	}
	end := start + state.ScreenCols
	if end > len(line) {
		end = len(line)
	}
	r.buf.WriteString(line[start:end])
}

func (r *Renderer) drawWelcome(state *statepkg.EditorState) {
	welcome := fmt.Sprintf("ked editor -- version %s", Version)
	if len(welcome) > state.ScreenCols {
		welcome = welcome[:state.ScreenCols]
	}
	padding := (state.ScreenCols - len(welcome)) / 2
	if padding > 0 {
		r.buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		r.buf.WriteByte(' ')
	}
	r.buf.WriteString(welcome)
}

func (r *Renderer) drawStatusBar(state *statepkg.EditorState) {
	r.buf.WriteString("\x1b[7m")
	r.buf.WriteString(statusBarText(state, state.ScreenCols))
	r.buf.WriteString("\x1b[m")
	r.buf.WriteString("\r\n")
}

func (r *Renderer) drawMessageLine(state *statepkg.EditorState, now time.Time) {
	r.buf.WriteString("\x1b[K")
	if state.StatusVisible(now) {
		r.buf.WriteString(messageLineText(state))
	}
}
