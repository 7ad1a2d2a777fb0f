package app

import (
	"github.com/ked-lab/ked/internal/fsio"
	statepkg "github.com/ked-lab/ked/internal/state"
	inputui "github.com/ked-lab/ked/internal/ui/input"
)

// Run drives the editor until quit: render a frame, wait for a key,
// dispatch, repeat. Quiet polls (the read timeout expiring) still repaint,
// which is how status messages disappear on time and how terminal resizes
// get noticed without a signal handler.
func (a *Application) Run() error {
	for !a.state.ShouldQuit {
		a.pollResize()
		if err := a.console.WriteFrame(a.renderer.Frame(a.state)); err != nil {
			return err
		}

		key, ok, err := a.decoder.ReadKey()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if err := a.dispatch(inputui.Translate(key)); err != nil {
			return err
		}
	}
	return a.console.Clear()
}

// dispatch routes one action. Saving needs the terminal and the
// filesystem, so the application handles it; everything else is pure
// state and goes through the reducer.
func (a *Application) dispatch(action statepkg.Action) error {
	if _, ok := action.(statepkg.SaveAction); ok {
		return a.save()
	}
	_, err := a.reducer.Reduce(a.state, action)
	return err
}

func (a *Application) pollResize() {
	rows, cols, err := a.console.Size()
	if err != nil || (rows == a.lastRows && cols == a.lastCols) {
		return
	}
	a.lastRows, a.lastCols = rows, cols
	_, _ = a.reducer.Reduce(a.state, statepkg.ResizeAction{Rows: rows, Cols: cols})
}

// save writes the document out. A document with no name prompts for one
// first; cancelling the prompt aborts the save and keeps the buffer
// dirty, as does a failed write.
func (a *Application) save() error {
	a.state.RearmQuit()

	if a.state.Filename == "" {
		name, ok, err := a.promptFilename()
		if err != nil {
			return err
		}
		if !ok {
			a.state.SetStatusMessage("Save aborted")
			return nil
		}
		a.state.Filename = name
	}

	n, err := fsio.Save(a.state.Filename, a.state.Buf.Serialize())
	if err != nil {
		a.state.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	a.state.MarkSaved()
	a.state.SetStatusMessage("%d bytes written to disk", n)
	return nil
}

// promptFilename runs a one-line prompt on the message line. Enter
// accepts a non-empty name, Escape cancels, backspace edits; every other
// byte outside printable ASCII is ignored.
func (a *Application) promptFilename() (string, bool, error) {
	var name []byte
	for {
		a.state.SetStatusMessage("Save as: %s (ESC to cancel)", name)
		if err := a.console.WriteFrame(a.renderer.Frame(a.state)); err != nil {
			return "", false, err
		}

		key, ok, err := a.decoder.ReadKey()
		if err != nil {
			return "", false, err
		}
		if !ok {
			continue
		}

		switch {
		case key == inputui.KeyEscape:
			a.state.SetStatusMessage("")
			return "", false, nil
		case key == inputui.KeyEnter:
			if len(name) > 0 {
				a.state.SetStatusMessage("")
				return string(name), true, nil
			}
		case key == inputui.KeyBackspace || key == inputui.KeyCtrlH || key == inputui.KeyDelete:
			if len(name) > 0 {
				name = name[:len(name)-1]
			}
		case key >= 0x20 && key < 0x7f:
			name = append(name, byte(key))
		}
	}
}
