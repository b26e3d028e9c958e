package input

import "testing"

func TestHandleEventSetsAndClearsFlags(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		flag func(c Controls) bool
	}{
		{"yaw left", KeyYawLeft, func(c Controls) bool { return c.YawLeft }},
		{"yaw right", KeyYawRight, func(c Controls) bool { return c.YawRight }},
		{"translate left", KeyTransLeft, func(c Controls) bool { return c.TransLeft }},
		{"translate right", KeyTransRight, func(c Controls) bool { return c.TransRight }},
		{"translate forward", KeyTransFwd, func(c Controls) bool { return c.TransFwd }},
		{"translate back", KeyTransBack, func(c Controls) bool { return c.TransBack }},
		{"grab", KeyGrab, func(c Controls) bool { return c.Grab }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Controls
			if !c.HandleEvent(Event{Key: tt.key, Press: true}) {
				t.Fatal("press event should be consumed")
			}
			if !tt.flag(c) {
				t.Error("flag should be set after key-down")
			}
			if !c.HandleEvent(Event{Key: tt.key, Press: false}) {
				t.Fatal("release event should be consumed")
			}
			if tt.flag(c) {
				t.Error("flag should clear after key-up")
			}
		})
	}
}

func TestHandleEventIgnoresRepeats(t *testing.T) {
	var c Controls
	c.HandleEvent(Event{Key: KeyGrab, Press: true})

	if c.HandleEvent(Event{Key: KeyGrab, Press: true, Repeat: true}) {
		t.Error("auto-repeat events must not be consumed")
	}
	if !c.Grab {
		t.Error("repeat must not clear a held flag")
	}
}

func TestHandleEventRejectsUnboundKeys(t *testing.T) {
	var c Controls
	for _, key := range []Key{KeyNone, KeyQuit, KeyEnter, KeyEscape} {
		if c.HandleEvent(Event{Key: key, Press: true}) {
			t.Errorf("key %v should not be consumed by controls", key)
		}
	}
	if c != (Controls{}) {
		t.Error("unbound keys must not change any flag")
	}
}

func TestThrusterCountExcludesGrab(t *testing.T) {
	c := Controls{YawLeft: true, TransFwd: true, TransBack: true, Grab: true}
	if got := c.ThrusterCount(); got != 3 {
		t.Errorf("ThrusterCount() = %d, want 3 (grab burns no fuel)", got)
	}

	all := Controls{
		YawLeft: true, YawRight: true,
		TransLeft: true, TransRight: true,
		TransFwd: true, TransBack: true,
		Grab: true,
	}
	if got := all.ThrusterCount(); got != 6 {
		t.Errorf("ThrusterCount() = %d, want 6", got)
	}
}

func TestFlagsAreIndependent(t *testing.T) {
	var c Controls
	c.HandleEvent(Event{Key: KeyTransFwd, Press: true})
	c.HandleEvent(Event{Key: KeyTransRight, Press: true})
	c.HandleEvent(Event{Key: KeyTransFwd, Press: false})

	if c.TransFwd {
		t.Error("released flag should clear")
	}
	if !c.TransRight {
		t.Error("other held flags should be untouched")
	}
}
