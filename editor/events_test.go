package editor

import (
	"testing"

	"github.com/iw2rmb/lineedit/buffer"
)

func TestOnChange_FiresOnEditsOnly(t *testing.T) {
	var events []ChangeEvent
	e := newTestEngine(t, "ab", func(c *Config) {
		c.OnChange = func(ev ChangeEvent) { events = append(events, ev) }
	})
	focus(t, e)

	press(t, e, KeyEvent{Key: KeyRight})
	press(t, e, KeyEvent{Key: KeyRight, Mods: ModShift})
	if len(events) != 0 {
		t.Fatalf("events after moves: got %d, want 0", len(events))
	}

	selectRange(t, e, 2, 2)
	press(t, e, TextInput("X"))
	if len(events) != 1 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 1)
	}
	ev := events[0]
	if ev.Text != "abX" || ev.Selection != buffer.Collapsed(3) || ev.Version != e.Buffer().Version() {
		t.Fatalf("event after insert: got %+v", ev)
	}

	press(t, e, KeyEvent{Key: KeyDelete})
	if len(events) != 1 {
		t.Fatalf("events after no-op delete: got %d, want %d", len(events), 1)
	}

	press(t, e, KeyEvent{Key: KeyBackspace})
	if len(events) != 2 || events[1].Text != "ab" {
		t.Fatalf("events after backspace: got %+v", events)
	}
}

func TestOnStateChange_Transitions(t *testing.T) {
	var states []VisualState
	e := newTestEngine(t, "", func(c *Config) {
		c.OnStateChange = func(s VisualState) { states = append(states, s) }
	})

	focus(t, e)
	press(t, e, TextInput("a"))
	e.SetFocused(false)
	drain(t, e)

	want := []VisualState{StateEmpty, StateEmptyFocused, StateFocused, StateDefault}
	if len(states) != len(want) {
		t.Fatalf("states: got %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("states[%d]: got %v, want %v", i, states[i], want[i])
		}
	}
}

func TestVisualStateString(t *testing.T) {
	cases := map[VisualState]string{
		StateDefault:      "default",
		StateEmpty:        "empty",
		StateFocused:      "focused",
		StateEmptyFocused: "empty_focused",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Fatalf("state %d: got %q, want %q", s, got, want)
		}
	}
}
