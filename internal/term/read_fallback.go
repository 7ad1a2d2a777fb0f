//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package term

// applyReadTimeout is a no-op on platforms without termios: there is no
// VMIN/VTIME equivalent, so reads block until a byte arrives. Escape
// sequences still decode; only idle repaints (message expiry, resize
// polls) wait for the next keypress.
func (c *Console) applyReadTimeout() error {
	return nil
}

// ReadByte reads one byte, blocking until input arrives.
func (c *Console) ReadByte() (byte, bool, error) {
	var b [1]byte
	n, err := c.in.Read(b[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return b[0], true, nil
}
