package cli

import (
	"math/big"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	pkgio "github.com/matzehuels/autgroup/pkg/io"
)

func testGroup() *pkgio.Result {
	// C4 on 0-1-2-3: rotation and reflection
	return &pkgio.Result{
		Order:         big.NewInt(8),
		NumGenerators: 3,
		Generators:    [][]int{{1, 2, 3, 0}, {0, 3, 2, 1}, {2, 1, 0, 3}},
		Orbits:        [][]int{{0, 1, 2, 3}},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m GeneratorListModel, msgs ...tea.Msg) GeneratorListModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GeneratorListModel)
	}
	return m
}

func TestGeneratorListNavigation(t *testing.T) {
	m := NewGeneratorListModel("cycle:4", testGroup())

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"start", nil, 0},
		{"down", []string{"down"}, 1},
		{"vim keys", []string{"j", "j", "k"}, 1},
		{"clamped at end", []string{"down", "down", "down", "down"}, 2},
		{"clamped at start", []string{"up", "k"}, 0},
		{"last and first", []string{"G"}, 2},
		{"first", []string{"G", "g"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msgs []tea.Msg
			for _, k := range tt.keys {
				msgs = append(msgs, key(k))
			}
			got := update(t, m, msgs...)
			if got.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", got.Cursor, tt.want)
			}
		})
	}
}

func TestGeneratorListScrolls(t *testing.T) {
	m := NewGeneratorListModel("cycle:4", testGroup())
	m.Height = 1

	m = update(t, m, key("down"), key("down"))
	if m.Offset != 2 {
		t.Errorf("Offset = %d, want 2", m.Offset)
	}
	m = update(t, m, key("up"))
	if m.Offset != 1 {
		t.Errorf("Offset = %d, want 1", m.Offset)
	}
}

func TestGeneratorListQuit(t *testing.T) {
	m := NewGeneratorListModel("cycle:4", testGroup())
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = key(k)
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("%s: expected quit command", k)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestGeneratorListView(t *testing.T) {
	m := NewGeneratorListModel("cycle:4", testGroup())
	m = update(t, m, key("down"))

	view := m.View()
	for _, want := range []string{"cycle:4", "|Aut| = 8", "(1 3)", "[2/3]", "generator 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestGeneratorListTrivialGroup(t *testing.T) {
	m := NewGeneratorListModel("path:1", &pkgio.Result{Order: big.NewInt(1), Orbits: [][]int{{0}}})
	m = update(t, m, key("down"), key("G"))
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	if !strings.Contains(m.View(), "trivial") {
		t.Error("view should mention the trivial group")
	}
}
