package input

import (
	"testing"
	"time"
)

// newTestStream builds a stream without the reader goroutine so tests can
// inject bytes directly.
func newTestStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

func (s *Stream) feed(bytes ...byte) {
	for _, b := range bytes {
		s.ch <- b
	}
}

func TestPollDecodesSingleBytes(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want Key
	}{
		{"yaw left", 'z', KeyYawLeft},
		{"yaw left upper", 'Z', KeyYawLeft},
		{"yaw right", 'x', KeyYawRight},
		{"grab", ' ', KeyGrab},
		{"quit", 'q', KeyQuit},
		{"enter", '\r', KeyEnter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			s.feed(tt.b)
			events := s.Poll(time.Now())
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			ev := events[0]
			if ev.Key != tt.want || !ev.Press || ev.Repeat {
				t.Errorf("got %+v, want press of %v", ev, tt.want)
			}
		})
	}
}

func TestPollDecodesArrowSequences(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want Key
	}{
		{"up", 'A', KeyTransFwd},
		{"down", 'B', KeyTransBack},
		{"right", 'C', KeyTransRight},
		{"left", 'D', KeyTransLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream()
			s.feed('\x1b', '[', tt.code)
			events := s.Poll(time.Now())
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1 (sequence should not decode as escape)", len(events))
			}
			if events[0].Key != tt.want || !events[0].Press {
				t.Errorf("got %+v, want press of %v", events[0], tt.want)
			}
		})
	}
}

func TestPollMarksHeldKeyAsRepeat(t *testing.T) {
	s := newTestStream()
	now := time.Now()

	s.feed('z')
	first := s.Poll(now)
	if len(first) != 1 || first[0].Repeat {
		t.Fatalf("first press should not be a repeat: %+v", first)
	}

	s.feed('z')
	second := s.Poll(now.Add(10 * time.Millisecond))
	if len(second) != 1 || !second[0].Repeat {
		t.Fatalf("byte while held should be a repeat: %+v", second)
	}
}

func TestPollSynthesizesRelease(t *testing.T) {
	s := newTestStream()
	now := time.Now()

	s.feed(' ')
	s.Poll(now)

	// Inside the hold window: still held, no event.
	if events := s.Poll(now.Add(keyHoldDuration / 2)); len(events) != 0 {
		t.Fatalf("got %d events inside hold window, want 0", len(events))
	}

	events := s.Poll(now.Add(keyHoldDuration + time.Millisecond))
	if len(events) != 1 {
		t.Fatalf("got %d events after hold window, want 1 release", len(events))
	}
	if ev := events[0]; ev.Key != KeyGrab || ev.Press {
		t.Errorf("got %+v, want release of KeyGrab", ev)
	}
}

func TestResetForgetsHeldKeys(t *testing.T) {
	s := newTestStream()
	now := time.Now()

	s.feed('z')
	s.Poll(now)
	s.Reset()

	if events := s.Poll(now.Add(2 * keyHoldDuration)); len(events) != 0 {
		t.Errorf("got %d events after reset, want none", len(events))
	}
}

func TestPollReportsClosedSource(t *testing.T) {
	s := newTestStream()
	s.feed('z')
	close(s.ch)

	events := s.Poll(time.Now())
	if len(events) != 1 || events[0].Key != KeyYawLeft {
		t.Fatalf("bytes buffered before close should still decode, got %+v", events)
	}
	if !s.Closed() {
		t.Error("Closed() should report true after the channel closes")
	}
}

func TestPollReassemblesSplitArrowSequence(t *testing.T) {
	s := newTestStream()
	now := time.Now()

	// The escape byte lands in one drain, the rest of the sequence in the
	// next, as happens when a read races the frame tick.
	s.feed('\x1b')
	if events := s.Poll(now); len(events) != 0 {
		t.Fatalf("lone escape byte decoded early as %+v", events)
	}

	s.feed('[', 'A')
	events := s.Poll(now.Add(time.Millisecond))
	if len(events) != 1 || events[0].Key != KeyTransFwd || !events[0].Press {
		t.Fatalf("got %+v, want press of KeyTransFwd", events)
	}
}

func TestPollReassemblesSequenceSplitAfterBracket(t *testing.T) {
	s := newTestStream()
	now := time.Now()

	s.feed('\x1b', '[')
	if events := s.Poll(now); len(events) != 0 {
		t.Fatalf("incomplete sequence decoded early as %+v", events)
	}

	s.feed('D')
	events := s.Poll(now.Add(time.Millisecond))
	if len(events) != 1 || events[0].Key != KeyTransLeft {
		t.Fatalf("got %+v, want press of KeyTransLeft", events)
	}
}

func TestPollEmitsEscapeWhenNothingFollows(t *testing.T) {
	s := newTestStream()
	now := time.Now()

	s.feed('\x1b')
	if events := s.Poll(now); len(events) != 0 {
		t.Fatalf("lone escape byte decoded early as %+v", events)
	}

	// No continuation by the next drain: it really was the escape key.
	events := s.Poll(now.Add(time.Millisecond))
	if len(events) != 1 || events[0].Key != KeyEscape || !events[0].Press {
		t.Fatalf("got %+v, want press of KeyEscape", events)
	}
}

func TestPollIgnoresUnknownBytes(t *testing.T) {
	s := newTestStream()
	s.feed('!', '5', 'p')
	if events := s.Poll(time.Now()); len(events) != 0 {
		t.Errorf("got %d events for unbound bytes, want 0", len(events))
	}
}
