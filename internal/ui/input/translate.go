package input

import (
	statepkg "github.com/ked-lab/ked/internal/state"
)

// Translate maps a decoded key to the action it triggers. Unbound keys
// yield a RefreshAction rather than nothing, so every keypress reaches the
// reducer and re-arms the quit confirmation.
func Translate(key Key) statepkg.Action {
	switch key {
	case KeyEnter:
		return statepkg.InsertNewlineAction{}
	case KeyCtrlQ:
		return statepkg.QuitAction{}
	case KeyCtrlS:
		return statepkg.SaveAction{}
	case KeyHome:
		return statepkg.CursorLineStartAction{}
	case KeyEnd:
		return statepkg.CursorLineEndAction{}
	case KeyBackspace, KeyCtrlH:
		return statepkg.DeleteBackAction{}
	case KeyDelete:
		return statepkg.DeleteForwardAction{}
	case KeyPageUp:
		return statepkg.PageUpAction{}
	case KeyPageDown:
		return statepkg.PageDownAction{}
	case KeyArrowUp:
		return statepkg.CursorUpAction{}
	case KeyArrowDown:
		return statepkg.CursorDownAction{}
	case KeyArrowLeft:
		return statepkg.CursorLeftAction{}
	case KeyArrowRight:
		return statepkg.CursorRightAction{}
	case KeyCtrlL, KeyEscape:
		return statepkg.RefreshAction{}
	}
	if insertable(key) {
		return statepkg.InsertCharAction{Ch: byte(key)}
	}
	return statepkg.RefreshAction{}
}

// insertable reports whether the key is a byte the document stores
// verbatim: printable ASCII, tab, or any byte of a multibyte encoding.
func insertable(key Key) bool {
	if key == '\t' {
		return true
	}
	return key >= 0x20 && key <= 0xff && key != 0x7f
}
