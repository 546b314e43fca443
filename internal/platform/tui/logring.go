package tui

import (
	"bytes"
	"sync"
)

// DefaultLogLines is how many log lines the debug window keeps.
const DefaultLogLines = 20

// LogRing is an io.Writer that keeps the last N complete lines written to it.
// It backs the debug window's log panel and is safe for concurrent use.
type LogRing struct {
	mu      sync.Mutex
	max     int
	lines   []string
	partial []byte
}

// NewLogRing creates a ring holding at most maxLines lines.
func NewLogRing(maxLines int) *LogRing {
	if maxLines <= 0 {
		maxLines = DefaultLogLines
	}
	return &LogRing{max: maxLines}
}

// Write splits p into lines. A trailing fragment without a newline is held
// until the rest of the line arrives.
func (r *LogRing) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := append(r.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		r.push(string(data[:i]))
		data = data[i+1:]
	}
	r.partial = append([]byte(nil), data...)
	return len(p), nil
}

func (r *LogRing) push(line string) {
	r.lines = append(r.lines, line)
	if over := len(r.lines) - r.max; over > 0 {
		r.lines = append(r.lines[:0], r.lines[over:]...)
	}
}

// Lines returns a copy of the stored lines, oldest first.
func (r *LogRing) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Clear drops all stored lines.
func (r *LogRing) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	r.partial = nil
}
