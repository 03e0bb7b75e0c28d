// Package input defines the discrete input events the simulation reacts to.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned for key names no input source can bind.
var ErrUnknownKey = errors.New("unknown key")

// namedKeys are the bindable keys besides single letters and digits.
var namedKeys = map[string]bool{
	"space": true,
	"enter": true,
	"tab":   true,
	"up":    true,
	"down":  true,
	"left":  true,
	"right": true,
}

// Kind tags an input event.
type Kind uint8

const (
	Quit Kind = iota
	KeyDown
)

// Event is a single discrete input.
type Event struct {
	Kind Kind
	Key  string // Normalized key name for KeyDown events
}

// Source yields the events observed since the previous poll. Poll must not block.
type Source interface {
	Poll() []Event
}

// Press returns a KeyDown event for the named key.
func Press(key string) Event {
	return Event{Kind: KeyDown, Key: NormalizeKey(key)}
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: Quit}
}

// NormalizeKey lower-cases and trims a key name so "Space" and " space" match.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// ParseKey normalizes a key name and checks that it is bindable: one of the
// named keys, a letter a-z or a digit 0-9.
func ParseKey(name string) (string, error) {
	key := NormalizeKey(name)
	if namedKeys[key] {
		return key, nil
	}
	if len(key) == 1 {
		if c := key[0]; c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Script replays events at fixed poll counts. Used for headless runs and tests.
type Script struct {
	polls  int
	events map[int][]Event
}

// NewScript returns an empty script.
func NewScript() *Script {
	return &Script{events: make(map[int][]Event)}
}

// At schedules events for the given poll index (0 = first poll).
func (s *Script) At(poll int, events ...Event) *Script {
	s.events[poll] = append(s.events[poll], events...)
	return s
}

// Poll returns the events scheduled for this poll and advances the script.
func (s *Script) Poll() []Event {
	ev := s.events[s.polls]
	delete(s.events, s.polls)
	s.polls++
	return ev
}

// Pending reports how many scheduled events have not been delivered yet.
func (s *Script) Pending() int {
	n := 0
	for _, ev := range s.events {
		n += len(ev)
	}
	return n
}
