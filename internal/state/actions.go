package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== CURSOR ACTIONS =====

type CursorUpAction struct{}
type CursorDownAction struct{}
type CursorLeftAction struct{}
type CursorRightAction struct{}
type CursorLineStartAction struct{}
type CursorLineEndAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}

// ===== EDIT ACTIONS =====

type InsertCharAction struct {
	Ch byte
}
type InsertNewlineAction struct{}
type DeleteBackAction struct{}
type DeleteForwardAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Rows int
	Cols int
}
type RefreshAction struct{} // bound to keys that only repaint

// ===== APPLICATION ACTIONS =====

type SaveAction struct{} // Ctrl-S - handled by the application, not the reducer
type QuitAction struct{} // Ctrl-Q - asks for confirmation while dirty
