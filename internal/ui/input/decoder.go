// Package input decodes raw terminal bytes into keys and maps keys to
// editor actions. The terminal is expected to be in raw mode with a short
// read timeout, so escape sequences arrive byte by byte and a lone ESC is
// distinguished from the start of a sequence by the timeout expiring.
package input

// Key is a decoded keypress. Printable bytes are their own value; keys
// that arrive as escape sequences get values above the byte range.
type Key int

const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

const (
	KeyCtrlH     Key = 'h' & 0x1f
	KeyCtrlL     Key = 'l' & 0x1f
	KeyEnter     Key = '\r'
	KeyCtrlQ     Key = 'q' & 0x1f
	KeyCtrlS     Key = 's' & 0x1f
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x7f
)

// ByteSource yields one input byte at a time. ok reports whether a byte
// arrived before the read timeout expired; a false ok with a nil error is
// a quiet poll, not end of input.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder turns the byte stream from a raw-mode terminal into Keys.
type Decoder struct {
	src ByteSource
}

func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadKey decodes the next keypress. ok is false when the poll window
// passed with no input. Escape sequences that stall or do not match a
// known key decode as a bare KeyEscape; the terminal stays usable no
// matter what bytes arrive.
func (d *Decoder) ReadKey() (Key, bool, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil || !ok {
		return 0, false, err
	}
	if Key(b) != KeyEscape {
		return Key(b), true, nil
	}
	return d.parseEscapeSequence()
}

func (d *Decoder) parseEscapeSequence() (Key, bool, error) {
	next, ok, err := d.src.ReadByte()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return KeyEscape, true, nil
	}

	switch next {
	case '[':
		return d.parseCSI()
	case 'O':
		final, ok, err := d.src.ReadByte()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return KeyEscape, true, nil
		}
		switch final {
		case 'H':
			return KeyHome, true, nil
		case 'F':
			return KeyEnd, true, nil
		}
		return KeyEscape, true, nil
	}
	return KeyEscape, true, nil
}

func (d *Decoder) parseCSI() (Key, bool, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return KeyEscape, true, nil
	}

	if b >= '0' && b <= '9' {
		final, ok, err := d.src.ReadByte()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return KeyEscape, true, nil
		}
		if final != '~' {
			return KeyEscape, true, nil
		}
		switch b {
		case '1', '7':
			return KeyHome, true, nil
		case '3':
			return KeyDelete, true, nil
		case '4', '8':
			return KeyEnd, true, nil
		case '5':
			return KeyPageUp, true, nil
		case '6':
			return KeyPageDown, true, nil
		}
		return KeyEscape, true, nil
	}

	switch b {
	case 'A':
		return KeyArrowUp, true, nil
	case 'B':
		return KeyArrowDown, true, nil
	case 'C':
		return KeyArrowRight, true, nil
	case 'D':
		return KeyArrowLeft, true, nil
	case 'H':
		return KeyHome, true, nil
	case 'F':
		return KeyEnd, true, nil
	}
	return KeyEscape, true, nil
}
