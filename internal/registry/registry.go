// Package registry keeps the playable game modes.
// Modes register themselves in init() functions, so the CLI and the menu can
// list and start them without importing each game package by name.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/magicsim/internal/core"
)

// Game is the interface every playable mode implements.
// Games hold pure state and logic; input mapping, timing and drawing to the
// terminal belong to the platform.
type Game interface {
	// ID returns the registry key of the mode (e.g. "sandbox").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset restores the starting layout.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the actions
	// collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered mode for listings and help text.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a mode.
type Factory func() Game

// ErrUnknownMode is returned by Create for an ID nobody registered.
var ErrUnknownMode = errors.New("unknown mode")

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode under id with a one-line description.
// Panics if id is taken or if the factory builds a game reporting another ID.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	sample := f()
	if sample.ID() != id {
		panic(fmt.Sprintf("registry: mode %q builds games with ID %q", id, sample.ID()))
	}

	entries[id] = entry{
		info:    GameInfo{ID: id, Title: sample.Title(), Description: description},
		factory: f,
	}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownMode, id)
	}
	return e.factory(), nil
}

// Usage formats the registered modes as an indented, aligned list
// ("  id  - description"), one per line.
func Usage() string {
	modes := List()
	width := 0
	for _, m := range modes {
		width = max(width, len(m.ID))
	}

	var b strings.Builder
	for _, m := range modes {
		fmt.Fprintf(&b, "  %-*s  - %s\n", width, m.ID, m.Description)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
