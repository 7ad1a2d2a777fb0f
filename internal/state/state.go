package state

import (
	"fmt"
	"time"

	"github.com/ked-lab/ked/internal/buffer"
)

// statusMessageTTL is how long a status message stays on screen.
const statusMessageTTL = 5 * time.Second

// reservedRows is the number of screen rows kept out of the text area:
// one for the status bar and one for the message line.
const reservedRows = 2

// quitConfirmations is how many extra Ctrl-Q presses a document with
// unsaved changes demands before the editor exits.
const quitConfirmations = 1

// ===== STATE DEFINITIONS =====

// EditorState is the single source of truth
type EditorState struct {
	// Document
	Buf           *buffer.Buffer
	Filename      string // empty until the document has a name on disk
	SavedRevision uint64 // buffer revision at the last load or save

	// Cursor
	Cx int // index into the current row's bytes
	Cy int // document row; may equal NumRows (the line past the end)
	Rx int // screen column of the cursor, derived from Cx on reconcile

	// Viewport
	RowOffset  int // first document row on screen
	ColOffset  int // first render column on screen
	ScreenRows int // text area height
	ScreenCols int // text area width

	// Status line
	StatusMessage string
	StatusTime    time.Time

	// Quit flow
	QuitPresses int // Ctrl-Q presses consumed by the unsaved-changes warning
	ShouldQuit  bool
}

// NewEditorState wraps a loaded document. The document counts as clean at
// this point regardless of how many operations loading it took.
func NewEditorState(buf *buffer.Buffer, screenRows, screenCols int) *EditorState {
	s := &EditorState{Buf: buf}
	s.SetScreenSize(screenRows, screenCols)
	s.MarkSaved()
	return s
}

// SetScreenSize records the terminal size. The status bar and message line
// each take a row; the text area gets the rest, with a floor of one cell
// so viewport math stays total on tiny terminals.
func (s *EditorState) SetScreenSize(rows, cols int) {
	s.ScreenRows = rows - reservedRows
	if s.ScreenRows < 1 {
		s.ScreenRows = 1
	}
	s.ScreenCols = cols
	if s.ScreenCols < 1 {
		s.ScreenCols = 1
	}
}

// Dirty reports whether the document has changed since the last save.
func (s *EditorState) Dirty() bool {
	return s.Buf.Revision() != s.SavedRevision
}

// MarkSaved records the current buffer revision as the on-disk one.
func (s *EditorState) MarkSaved() {
	s.SavedRevision = s.Buf.Revision()
}

// RearmQuit resets the unsaved-changes confirmation, so the next Ctrl-Q
// warns again instead of continuing a previous confirmation run.
func (s *EditorState) RearmQuit() {
	s.QuitPresses = 0
}

// SetStatusMessage formats and stores a message for the message line,
// stamping it so the renderer can expire it.
func (s *EditorState) SetStatusMessage(format string, args ...interface{}) {
	s.StatusMessage = fmt.Sprintf(format, args...)
	s.StatusTime = time.Now()
}

// StatusVisible reports whether the stored message should still be shown.
func (s *EditorState) StatusVisible(now time.Time) bool {
	return s.StatusMessage != "" && now.Sub(s.StatusTime) < statusMessageTTL
}

// ReconcileViewport derives Rx from the cursor position and drags the
// scroll offsets the minimal distance that puts the cursor back inside
// the text area. Calling it twice in a row never moves anything the
// second time; the renderer runs it before composing every frame.
func (s *EditorState) ReconcileViewport() {
	s.Rx = 0
	if s.Cy < s.Buf.NumRows() {
		s.Rx = s.Buf.CxToRx(s.Cy, s.Cx)
	}

	if s.Cy < s.RowOffset {
		s.RowOffset = s.Cy
	}
	if s.Cy >= s.RowOffset+s.ScreenRows {
		s.RowOffset = s.Cy - s.ScreenRows + 1
	}
	if s.Rx < s.ColOffset {
		s.ColOffset = s.Rx
	}
	if s.Rx >= s.ColOffset+s.ScreenCols {
		s.ColOffset = s.Rx - s.ScreenCols + 1
	}
}
