package state

// StateReducer applies actions to the editor state. State is mutated in
// place; the returned pointer is the same state, kept in the signature so
// callers read it as a transition.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies one action. Every keypress-driven action except Ctrl-Q
// re-arms the unsaved-changes confirmation, so only an uninterrupted run
// of Ctrl-Q presses can discard a dirty document. A resize is not a
// keypress and leaves the confirmation alone.
func (r *StateReducer) Reduce(state *EditorState, action Action) (*EditorState, error) {
	switch action.(type) {
	case QuitAction, ResizeAction:
	default:
		state.RearmQuit()
	}

	switch a := action.(type) {

	// ===== CURSOR MOVEMENT =====

	case CursorUpAction:
		r.moveCursorUp(state)

	case CursorDownAction:
		r.moveCursorDown(state)

	case CursorLeftAction:
		r.moveCursorLeft(state)

	case CursorRightAction:
		r.moveCursorRight(state)

	case CursorLineStartAction:
		state.Cx = 0

	case CursorLineEndAction:
		state.Cx = state.Buf.RowLen(state.Cy)

	case PageUpAction:
		state.Cy = state.RowOffset
		for i := 0; i < state.ScreenRows; i++ {
			r.moveCursorUp(state)
		}

	case PageDownAction:
		state.Cy = state.RowOffset + state.ScreenRows - 1
		if state.Cy > state.Buf.NumRows() {
			state.Cy = state.Buf.NumRows()
		}
		for i := 0; i < state.ScreenRows; i++ {
			r.moveCursorDown(state)
		}

	// ===== EDITING =====

	case InsertCharAction:
		if state.Cy == state.Buf.NumRows() {
			state.Buf.InsertRow(state.Buf.NumRows(), "")
		}
		state.Buf.InsertChar(state.Cy, state.Cx, a.Ch)
		state.Cx++

	case InsertNewlineAction:
		if state.Cx == 0 {
			state.Buf.InsertRow(state.Cy, "")
		} else {
			state.Buf.SplitRow(state.Cy, state.Cx)
		}
		state.Cy++
		state.Cx = 0

	case DeleteBackAction:
		if state.Cy == state.Buf.NumRows() {
			break
		}
		if state.Cx == 0 && state.Cy == 0 {
			break
		}
		if state.Cx > 0 {
			state.Buf.DeleteChar(state.Cy, state.Cx-1)
			state.Cx--
		} else {
			state.Cx = state.Buf.RowLen(state.Cy - 1)
			state.Buf.JoinRows(state.Cy)
			state.Cy--
		}

	case DeleteForwardAction:
		if state.Cy >= state.Buf.NumRows() {
			break
		}
		if state.Cx < state.Buf.RowLen(state.Cy) {
			state.Buf.DeleteChar(state.Cy, state.Cx)
		} else if state.Cy+1 < state.Buf.NumRows() {
			state.Buf.JoinRows(state.Cy + 1)
		}

	// ===== VIEW =====

	case ResizeAction:
		state.SetScreenSize(a.Rows, a.Cols)

	case RefreshAction:
		// nothing to do; the re-arm above is the point

	// ===== APPLICATION =====

	case QuitAction:
		if state.Dirty() && state.QuitPresses < quitConfirmations {
			state.QuitPresses++
			remaining := quitConfirmations - state.QuitPresses + 1
			state.SetStatusMessage(
				"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
				remaining)
			break
		}
		state.ShouldQuit = true
	}

	return state, nil
}

// Cursor movement matches what the arrow keys do one step at a time; the
// page actions reuse these so paging hits the same boundary behavior.

func (r *StateReducer) moveCursorUp(state *EditorState) {
	if state.Cy > 0 {
		state.Cy--
	}
	r.snapCursorToRow(state)
}

func (r *StateReducer) moveCursorDown(state *EditorState) {
	if state.Cy < state.Buf.NumRows() {
		state.Cy++
	}
	r.snapCursorToRow(state)
}

func (r *StateReducer) moveCursorLeft(state *EditorState) {
	if state.Cx > 0 {
		state.Cx--
	} else if state.Cy > 0 {
		state.Cy--
		state.Cx = state.Buf.RowLen(state.Cy)
	}
	r.snapCursorToRow(state)
}

func (r *StateReducer) moveCursorRight(state *EditorState) {
	if state.Cy < state.Buf.NumRows() {
		if state.Cx < state.Buf.RowLen(state.Cy) {
			state.Cx++
		} else {
			state.Cy++
			state.Cx = 0
		}
	}
	r.snapCursorToRow(state)
}

// snapCursorToRow pulls Cx back inside the row the cursor landed on, since
// vertical moves can arrive from a longer line.
func (r *StateReducer) snapCursorToRow(state *EditorState) {
	rowLen := state.Buf.RowLen(state.Cy)
	if state.Cx > rowLen {
		state.Cx = rowLen
	}
}
