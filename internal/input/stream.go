package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last byte.
// Terminals deliver no release events, so release is synthesized when the
// byte stream for a key goes quiet. The window has to bridge the terminal's
// initial auto-repeat delay or held thrusters would flicker off.
const keyHoldDuration = 250 * time.Millisecond

// numKeys sized to the Key constants; KeyEscape is the last one.
const numKeys = int(KeyEscape) + 1

// Stream reads raw terminal bytes on a goroutine and turns them into
// discrete press/release events. A byte for an unheld key produces a press;
// further bytes while held produce repeat presses; silence past the hold
// window produces a release.
type Stream struct {
	ch      chan byte
	held    [numKeys]time.Time
	pending []byte
	closed  bool
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The channel closes when the reader fails (e.g. the session ends).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all pending bytes (non-blocking) and returns the key events
// they imply at time now, in key order.
func (s *Stream) Poll(now time.Time) []Event {
	buf := s.pending
	s.pending = nil
	carried := len(buf)
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	// Bytes carried over from the previous drain that got no continuation
	// were a real escape press, not the start of a split sequence.
	partial := len(buf) > carried
	return s.expire(now, s.decode(buf, now, partial))
}

// Closed reports whether the byte source ended. No further presses can
// arrive; held keys still release as their hold windows lapse.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets all held keys and buffered bytes without emitting release
// events. Used when switching screens so a held key does not leak into the
// next state.
func (s *Stream) Reset() {
	s.held = [numKeys]time.Time{}
	s.pending = nil
}

// decode parses the drained bytes, updating hold timestamps and collecting
// press events. When partial is set, a trailing byte run that could be the
// start of a CSI sequence is held back for the next drain instead of
// decoding as a bare escape.
func (s *Stream) decode(buf []byte, now time.Time, partial bool) []Event {
	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			rest := buf[i:]
			// CSI sequences: ESC [ <code> for the arrow keys.
			if len(rest) >= 3 && rest[1] == '[' {
				var key Key
				switch rest[2] {
				case 'A':
					key = KeyTransFwd
				case 'B':
					key = KeyTransBack
				case 'C':
					key = KeyTransRight
				case 'D':
					key = KeyTransLeft
				}
				if key != KeyNone {
					events = append(events, s.press(key, now))
					i += 2
					continue
				}
			} else if partial && (len(rest) == 1 || rest[1] == '[') {
				s.pending = append(s.pending[:0], rest...)
				break
			}
		}

		if key := decodeByte(b); key != KeyNone {
			events = append(events, s.press(key, now))
		}
	}
	return events
}

// press records a key byte and builds the press event, marking it as a
// repeat if the key was already held.
func (s *Stream) press(key Key, now time.Time) Event {
	ev := Event{Key: key, Press: true, Repeat: !s.held[key].IsZero()}
	s.held[key] = now
	return ev
}

// expire appends release events for keys whose hold window lapsed.
func (s *Stream) expire(now time.Time, events []Event) []Event {
	for k := range s.held {
		if s.held[k].IsZero() {
			continue
		}
		if now.Sub(s.held[k]) >= keyHoldDuration {
			s.held[k] = time.Time{}
			events = append(events, Event{Key: Key(k), Press: false})
		}
	}
	return events
}

// decodeByte maps a single byte to its key.
func decodeByte(b byte) Key {
	switch b {
	case 'z', 'Z':
		return KeyYawLeft
	case 'x', 'X':
		return KeyYawRight
	case ' ':
		return KeyGrab
	case 'q', 'Q':
		return KeyQuit
	case '\n', '\r':
		return KeyEnter
	case '\x1b':
		return KeyEscape
	}
	return KeyNone
}
