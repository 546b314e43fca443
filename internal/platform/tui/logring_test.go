package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogRingKeepsLastLines(t *testing.T) {
	r := NewLogRing(3)
	for i := range 5 {
		fmt.Fprintf(r, "line %d\n", i)
	}

	got := r.Lines()
	want := []string{"line 2", "line 3", "line 4"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestLogRingJoinsPartialWrites(t *testing.T) {
	r := NewLogRing(0)
	r.Write([]byte("hel"))
	if len(r.Lines()) != 0 {
		t.Fatal("partial line should not be stored yet")
	}
	r.Write([]byte("lo\nwor"))
	r.Write([]byte("ld\n"))

	got := r.Lines()
	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Errorf("Lines() = %q", got)
	}

	r.Clear()
	if len(r.Lines()) != 0 {
		t.Error("Clear should drop lines")
	}
}

func TestLogRingAsLoggerOutput(t *testing.T) {
	r := NewLogRing(DefaultLogLines)
	logger := log.New(r)
	logger.Info("crate_ignited at (3,1) by fire", "mode", "sandbox")

	lines := r.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %q", lines)
	}
	for _, want := range []string{"INFO", "crate_ignited at (3,1) by fire", "mode=sandbox"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q missing %q", lines[0], want)
		}
	}
}
