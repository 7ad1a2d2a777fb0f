// Package app wires the editor together: it loads the document, owns the
// read-dispatch-render loop, and carries the save and prompt flows that
// touch both the terminal and the filesystem.
package app

import (
	"fmt"
	"os"

	"github.com/ked-lab/ked/internal/buffer"
	"github.com/ked-lab/ked/internal/fsio"
	statepkg "github.com/ked-lab/ked/internal/state"
	inputui "github.com/ked-lab/ked/internal/ui/input"
	renderui "github.com/ked-lab/ked/internal/ui/render"
)

// Console is the slice of terminal behavior the application needs. The
// real implementation is internal/term; tests script a fake.
type Console interface {
	inputui.ByteSource
	Size() (rows, cols int, err error)
	WriteFrame(frame []byte) error
	Clear() error
}

// Application represents the running editor.
type Application struct {
	console  Console
	state    *statepkg.EditorState
	reducer  *statepkg.StateReducer
	renderer *renderui.Renderer
	decoder  *inputui.Decoder

	lastRows int
	lastCols int
}

// New loads filename into a fresh editor. An empty filename or a file
// that does not exist yet opens an empty document; the name sticks and
// is created on the first save.
func New(console Console, filename string, tabWidth int) (*Application, error) {
	rows, cols, err := console.Size()
	if err != nil {
		return nil, fmt.Errorf("querying terminal size: %w", err)
	}

	buf := buffer.New(tabWidth)
	if filename != "" {
		lines, err := fsio.LoadLines(filename)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		for i, line := range lines {
			buf.InsertRow(i, line)
		}
	}

	state := statepkg.NewEditorState(buf, rows, cols)
	state.Filename = filename
	state.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit")

	return &Application{
		console:  console,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(),
		decoder:  inputui.NewDecoder(console),
		lastRows: rows,
		lastCols: cols,
	}, nil
}

// State exposes the editor state for inspection in tests.
func (a *Application) State() *statepkg.EditorState {
	return a.state
}
