package input

import (
	"errors"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	for _, in := range []string{"space", "Space", " SPACE "} {
		if got := NormalizeKey(in); got != "space" {
			t.Errorf("NormalizeKey(%q) = %q", in, got)
		}
	}
}

func TestScriptDeliversInOrder(t *testing.T) {
	s := NewScript().
		At(0, Press("space")).
		At(2, Press("Space"), QuitEvent())

	if ev := s.Poll(); len(ev) != 1 || ev[0].Kind != KeyDown || ev[0].Key != "space" {
		t.Errorf("poll 0: unexpected events %+v", ev)
	}
	if ev := s.Poll(); len(ev) != 0 {
		t.Errorf("poll 1: expected no events, got %+v", ev)
	}
	ev := s.Poll()
	if len(ev) != 2 || ev[1].Kind != Quit {
		t.Errorf("poll 2: unexpected events %+v", ev)
	}
	if s.Pending() != 0 {
		t.Errorf("expected script drained, %d pending", s.Pending())
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"space", "space", true},
		{" Enter ", "enter", true},
		{"UP", "up", true},
		{"tab", "tab", true},
		{"a", "a", true},
		{"Z", "z", true},
		{"7", "7", true},
		{"", "", false},
		{"f1", "", false},
		{"escape", "", false},
		{"ab", "", false},
		{"-", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if !tt.ok {
				if !errors.Is(err, ErrUnknownKey) {
					t.Errorf("ParseKey(%q) error = %v, want ErrUnknownKey", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseKey(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}
