package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/magicsim/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return stubGame{id: id} }
}

func find(id string) (GameInfo, bool) {
	for _, info := range List() {
		if info.ID == id {
			return info, true
		}
	}
	return GameInfo{}, false
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", "second stub", stub("test_b"))
	Register("test_a", "first stub", stub("test_a"))

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("ID = %q, want test_b", g.ID())
	}

	info, ok := find("test_a")
	if !ok {
		t.Fatal("test_a not listed")
	}
	if info.Title != "Stub test_a" || info.Description != "first stub" {
		t.Errorf("info = %+v", info)
	}

	modes := List()
	for i := 1; i < len(modes); i++ {
		if modes[i-1].ID > modes[i].ID {
			t.Errorf("List not sorted: %v", modes)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_mode")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
	if err != nil && !strings.Contains(err.Error(), `"no_such_mode"`) {
		t.Errorf("err = %v, want the id quoted", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "", stub("test_dup"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_dup", "", stub("test_dup"))
}

func TestRegisterMismatchedIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when the factory reports another ID")
		}
	}()
	Register("test_wrong", "", stub("test_other"))
}

func TestUsageAlignsDescriptions(t *testing.T) {
	Register("test_usage_long", "long id", stub("test_usage_long"))
	Register("test_u", "short id", stub("test_u"))

	usage := Usage()
	var long, short string
	for _, line := range strings.Split(usage, "\n") {
		switch {
		case strings.Contains(line, "test_usage_long "):
			long = line
		case strings.Contains(line, "test_u "):
			short = line
		}
	}
	if long == "" || short == "" {
		t.Fatalf("usage missing modes:\n%s", usage)
	}
	if strings.Index(long, "- ") != strings.Index(short, "- ") {
		t.Errorf("descriptions not aligned:\n%s\n%s", long, short)
	}
	if !strings.HasPrefix(short, "  test_u") || !strings.HasSuffix(short, "- short id") {
		t.Errorf("line = %q", short)
	}
}
