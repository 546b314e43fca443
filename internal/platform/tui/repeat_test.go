package tui

import (
	"testing"
	"time"
)

func TestRepeatGuard(t *testing.T) {
	g := NewRepeatGuard(90 * time.Millisecond)
	t0 := time.Unix(0, 0)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	steps := []struct {
		key  string
		ms   int
		want bool
	}{
		{"w", 0, true},
		{"w", 30, false}, // auto-repeat
		{"w", 60, false}, // still held; window restarts on every press
		{"d", 70, true},  // different key
		{"d", 200, true}, // released and pressed again
		{"d", 250, false},
	}

	for _, s := range steps {
		if got := g.Allow(s.key, at(s.ms)); got != s.want {
			t.Errorf("Allow(%q, %dms) = %v, want %v", s.key, s.ms, got, s.want)
		}
	}
}

func TestRepeatGuardDisabled(t *testing.T) {
	now := time.Now()
	for _, g := range []*RepeatGuard{nil, NewRepeatGuard(0)} {
		if !g.Allow("w", now) || !g.Allow("w", now) {
			t.Error("disabled guard must allow every press")
		}
	}
}
