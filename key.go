package ushell

// Key identifies a logical input event decoded from the raw byte stream.
type Key uint8

const (
	// KeyNone is the zero value; it is never emitted.
	KeyNone Key = iota

	// Arrow keys
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown

	// Input / editing keys
	KeyEnter
	KeyBackspace
	KeyTab
	KeyShiftTab

	// Control sequences
	KeyCtrlU
	KeyCtrlK
	KeyCtrlD
	KeyCtrlN
	KeyCtrlP

	// Printable character; the byte is carried in KeyEvent.Ch.
	KeyChar
)

// KeyEvent is one decoded key. Ch is meaningful only when Key == KeyChar.
type KeyEvent struct {
	Key Key
	Ch  byte
}

// maxEscapeLen is the longest escape sequence the decoder accumulates
// before giving up: ESC [ <digit> ~.
const maxEscapeLen = 4

// KeyDecoder is a byte-driven VT100/ANSI escape-sequence state machine.
// Feed it one byte at a time; it emits at most one KeyEvent per byte.
//
// The decoder keeps no history beyond the escape buffer, so a byte
// stream split at any boundary decodes to the same key sequence as the
// stream fed whole.
type KeyDecoder struct {
	escBuffer [maxEscapeLen]byte
	escLen    int
	inEscape  bool
}

// Feed consumes one byte and reports the decoded key, if any.
func (d *KeyDecoder) Feed(b byte) (KeyEvent, bool) {
	if d.inEscape {
		return d.feedEscape(b)
	}

	switch {
	case b == 0x1B:
		d.inEscape = true
		d.escBuffer[0] = b
		d.escLen = 1
		return KeyEvent{}, false
	case b == 0x15:
		return KeyEvent{Key: KeyCtrlU}, true
	case b == 0x0B:
		return KeyEvent{Key: KeyCtrlK}, true
	case b == 0x04:
		return KeyEvent{Key: KeyCtrlD}, true
	case b == 0x0E:
		return KeyEvent{Key: KeyCtrlN}, true
	case b == 0x10:
		return KeyEvent{Key: KeyCtrlP}, true
	case b == '\r' || b == '\n':
		return KeyEvent{Key: KeyEnter}, true
	case b == '\t':
		return KeyEvent{Key: KeyTab}, true
	case b == 0x7F || b == 0x08:
		return KeyEvent{Key: KeyBackspace}, true
	case b >= 0x20 && b < 0x7F:
		return KeyEvent{Key: KeyChar, Ch: b}, true
	}

	// Unmapped control byte: consumed, no key.
	return KeyEvent{}, false
}

func (d *KeyDecoder) feedEscape(b byte) (KeyEvent, bool) {
	d.escBuffer[d.escLen] = b
	d.escLen++

	buf := d.escBuffer[:d.escLen]

	if len(buf) >= 3 && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return d.emit(KeyEvent{Key: KeyArrowUp})
		case 'B':
			return d.emit(KeyEvent{Key: KeyArrowDown})
		case 'C':
			return d.emit(KeyEvent{Key: KeyArrowRight})
		case 'D':
			return d.emit(KeyEvent{Key: KeyArrowLeft})
		case 'H':
			return d.emit(KeyEvent{Key: KeyHome})
		case 'F':
			return d.emit(KeyEvent{Key: KeyEnd})
		case 'Z':
			return d.emit(KeyEvent{Key: KeyShiftTab})
		case '1', '2', '3', '4', '5', '6':
			// ESC [ n ~ sequences: wait for the terminator.
			if len(buf) < 4 {
				return KeyEvent{}, false
			}
			if buf[3] == '~' {
				switch buf[2] {
				case '1':
					return d.emit(KeyEvent{Key: KeyHome})
				case '2':
					return d.emit(KeyEvent{Key: KeyInsert})
				case '3':
					return d.emit(KeyEvent{Key: KeyDelete})
				case '4':
					return d.emit(KeyEvent{Key: KeyEnd})
				case '5':
					return d.emit(KeyEvent{Key: KeyPageUp})
				case '6':
					return d.emit(KeyEvent{Key: KeyPageDown})
				}
			}
			// ESC [ n followed by anything else: discard.
			d.reset()
			return KeyEvent{}, false
		default:
			// Unknown CSI final byte falls through as a plain character.
			return d.emit(KeyEvent{Key: KeyChar, Ch: buf[2]})
		}
	}

	if d.escLen >= maxEscapeLen {
		// Not a sequence we recognise; drop it without emitting.
		d.reset()
	}
	return KeyEvent{}, false
}

func (d *KeyDecoder) emit(ev KeyEvent) (KeyEvent, bool) {
	d.reset()
	return ev, true
}

func (d *KeyDecoder) reset() {
	d.inEscape = false
	d.escLen = 0
}
