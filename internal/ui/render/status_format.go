package render

import (
	"fmt"
	"strings"

	statepkg "github.com/ked-lab/ked/internal/state"
	"github.com/ked-lab/ked/internal/textutil"
)

// maxStatusNameWidth caps how much of the status bar a long file name may
// claim, leaving room for the line count and position indicator.
const maxStatusNameWidth = 20

// statusBarText lays out the inverse-video status bar: document name,
// line count and dirty marker on the left, cursor position on the right.
// The right side is dropped when the bar is too narrow for both.
func statusBarText(state *statepkg.EditorState, width int) string {
	name := state.Filename
	if name == "" {
		name = "[No Name]"
	}
	name = textutil.TruncateToWidth(textutil.SanitizeTerminalText(name), maxStatusNameWidth)

	modified := ""
	if state.Dirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, state.Buf.NumRows(), modified)
	right := fmt.Sprintf("%d/%d", state.Cy+1, state.Buf.NumRows())

	leftWidth := textutil.DisplayWidth(left)
	if leftWidth > width {
		left = textutil.TruncateToWidth(left, width)
		leftWidth = textutil.DisplayWidth(left)
	}

	gap := width - leftWidth - textutil.DisplayWidth(right)
	if gap < 0 {
		return left + strings.Repeat(" ", width-leftWidth)
	}
	return left + strings.Repeat(" ", gap) + right
}

// messageLineText clips the status message to the screen width.
func messageLineText(state *statepkg.EditorState) string {
	return textutil.TruncateToWidth(state.StatusMessage, state.ScreenCols)
}
