package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/valdigraph/pkg/session"
)

func browserFixture(t *testing.T) (ArcBrowserModel, *int) {
	t.Helper()
	sess, err := session.New(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if err := sess.AddNode(id, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := sess.EditEdge("a", "b", 0.9, 0.1); err != nil {
		t.Fatal(err)
	}
	if err := sess.EditEdge("b", "c", 0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	saves := 0
	save := func(*session.Session) (string, error) {
		saves++
		return "g.xml", nil
	}
	return NewArcBrowserModel(sess, save), &saves
}

func key(m tea.Model, k string) ArcBrowserModel {
	var msg tea.KeyMsg
	switch k {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(ArcBrowserModel)
}

func TestBrowserNavigation(t *testing.T) {
	m, _ := browserFixture(t)
	if len(m.Arcs) != 2 {
		t.Fatalf("arcs = %d, want 2", len(m.Arcs))
	}
	m = key(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first arc: %d", m.Cursor)
	}
	m = key(m, "down")
	m = key(m, "j")
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1 (clamped)", m.Cursor)
	}
	m = key(m, "k")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestBrowserInvertAndWrite(t *testing.T) {
	m, saves := browserFixture(t)

	m = key(m, "i")
	if !m.Dirty || m.Failed {
		t.Fatalf("after invert dirty=%v failed=%v status=%q", m.Dirty, m.Failed, m.Status)
	}
	if got := m.Session.Digraph().Value("a", "b").String(); got != "0.10" {
		t.Errorf("r(a,b) = %s, want 0.10", got)
	}
	if m.Arcs[0].ForwardText() != "0.10" {
		t.Errorf("arc list not refreshed: %+v", m.Arcs[0])
	}

	m = key(m, "w")
	if *saves != 1 || m.Dirty || !strings.Contains(m.Status, "g.xml") {
		t.Errorf("after write saves=%d dirty=%v status=%q", *saves, m.Dirty, m.Status)
	}
}

func TestBrowserHideAndDelete(t *testing.T) {
	m, _ := browserFixture(t)
	m = key(m, "down")

	m = key(m, "h")
	if !m.Session.Hide() || len(m.Arcs) != 1 {
		t.Fatalf("hide: flag=%v arcs=%d", m.Session.Hide(), len(m.Arcs))
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.Cursor)
	}

	m = key(m, "d")
	if len(m.Arcs) != 0 || m.Cursor != 0 {
		t.Errorf("after delete arcs=%d cursor=%d", len(m.Arcs), m.Cursor)
	}
	if !strings.Contains(m.View(), "no arcs") {
		t.Error("empty view should say there are no arcs")
	}
	m = key(m, "i")
	if m.Failed {
		t.Error("invert with no selection should be a no-op")
	}
}

func TestBrowserSaveError(t *testing.T) {
	m, _ := browserFixture(t)
	m.save = func(*session.Session) (string, error) { return "", errors.New("disk full") }
	m = key(m, "i")
	m = key(m, "w")
	if !m.Failed || !m.Dirty || m.Status != "disk full" {
		t.Errorf("after failed write failed=%v dirty=%v status=%q", m.Failed, m.Dirty, m.Status)
	}
}

func TestBrowserQuit(t *testing.T) {
	m, _ := browserFixture(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBrowserView(t *testing.T) {
	m, _ := browserFixture(t)
	v := m.View()
	for _, want := range []string{"Arcs", "forward-strong", "symmetric-neutral", "[1/2]"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}
