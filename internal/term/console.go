// Package term owns the terminal: raw mode, sizing, byte-at-a-time input
// with a short read timeout, and frame output. Everything else in the
// editor works on plain bytes and leaves the tty details here.
package term

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Console wraps the controlling terminal's input and output streams.
type Console struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	restore *term.State
}

// Open wraps standard input and output. It fails when stdin is not a
// terminal, since raw mode and escape-sequence input need a real tty.
func Open() (*Console, error) {
	in, out := os.Stdin, os.Stdout
	if !term.IsTerminal(int(in.Fd())) {
		return nil, errors.New("standard input is not a terminal")
	}
	return &Console{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}, nil
}

// EnterRaw switches the terminal to raw mode and arms the read timeout
// that lets input polls return empty. Restore undoes it.
func (c *Console) EnterRaw() error {
	state, err := term.MakeRaw(c.inFd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	c.restore = state
	if err := c.applyReadTimeout(); err != nil {
		c.Restore()
		return err
	}
	return nil
}

// Restore puts the terminal back in the mode it had before EnterRaw.
// Safe to call more than once; extra calls do nothing.
func (c *Console) Restore() {
	if c.restore == nil {
		return
	}
	_ = term.Restore(c.inFd, c.restore)
	c.restore = nil
}

// Size reports the terminal dimensions in character cells. When the
// size ioctl is unavailable it falls back to parking the cursor in the
// bottom-right corner and asking the terminal where it ended up.
func (c *Console) Size() (rows, cols int, err error) {
	width, height, err := term.GetSize(c.outFd)
	if err == nil && width > 0 {
		return height, width, nil
	}
	return c.cursorPositionSize()
}

func (c *Console) cursorPositionSize() (int, int, error) {
	if _, err := c.out.Write([]byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, err
	}

	var report []byte
	for len(report) < 32 {
		b, ok, err := c.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		report = append(report, b)
	}
	return parseCursorReport(report)
}

// parseCursorReport extracts rows and cols from a cursor position report,
// which arrives as ESC [ rows ; cols (the trailing R already consumed).
func parseCursorReport(report []byte) (int, int, error) {
	var rows, cols int
	n, err := fmt.Sscanf(string(report), "\x1b[%d;%d", &rows, &cols)
	if err != nil || n != 2 || rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("bad cursor position report %q", report)
	}
	return rows, cols, nil
}

// WriteFrame pushes one composed frame to the terminal in a single write.
func (c *Console) WriteFrame(frame []byte) error {
	_, err := c.out.Write(frame)
	return err
}

// Clear wipes the screen and homes the cursor. Used on the way out so
// the shell gets a clean prompt, not mid-frame leftovers.
func (c *Console) Clear() error {
	return c.WriteFrame([]byte("\x1b[2J\x1b[H"))
}
