//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// applyReadTimeout sets VMIN=0 VTIME=1: a read returns as soon as one
// byte is available, or empty after a tenth of a second. That tenth of a
// second is also what separates a typed ESC from an escape sequence.
func (c *Console) applyReadTimeout() error {
	tio, err := unix.IoctlGetTermios(c.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("reading termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(c.inFd, ioctlWriteTermios, tio); err != nil {
		return fmt.Errorf("arming read timeout: %w", err)
	}
	return nil
}

// ReadByte polls the terminal for one byte. ok is false when the VTIME
// window passed with nothing typed. The raw fd is read directly because
// os.File turns the timeout's zero-byte reads into io.EOF.
func (c *Console) ReadByte() (byte, bool, error) {
	var b [1]byte
	for {
		n, err := unix.Read(c.inFd, b[:])
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, err
		}
		if n == 0 {
			return 0, false, nil
		}
		return b[0], true, nil
	}
}
