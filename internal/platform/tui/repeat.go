package tui

import "time"

// RepeatGuard drops terminal auto-repeat. Terminals report a held key as a
// stream of presses with no release event, so a press of the same key that
// arrives within Window of the previous one is treated as a repeat.
type RepeatGuard struct {
	Window time.Duration

	last   string
	lastAt time.Time
}

// NewRepeatGuard creates a guard. A zero or negative window disables it.
func NewRepeatGuard(window time.Duration) *RepeatGuard {
	return &RepeatGuard{Window: window}
}

// Allow reports whether a press of key at now should be acted on.
// Every press, allowed or not, restarts the window, so a held key yields
// one action until it is released long enough to let the window lapse.
func (g *RepeatGuard) Allow(key string, now time.Time) bool {
	if g == nil || g.Window <= 0 {
		return true
	}
	repeat := key == g.last && now.Sub(g.lastAt) < g.Window
	g.last = key
	g.lastAt = now
	return !repeat
}
