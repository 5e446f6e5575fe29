package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/spotlight/wallpaper"
)

func testGroups() []wallpaper.SimilarGroup {
	return []wallpaper.SimilarGroup{
		{Hash: "ABC123", Files: []string{"/tmp/a1", "/tmp/a2"}},
		{Hash: "DEF456", Files: []string{"/tmp/b1", "/tmp/b2", "/tmp/b3"}},
	}
}

func updateDup(t *testing.T, m DuplicatesModel, msg tea.Msg) (DuplicatesModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DuplicatesModel)
	if !ok {
		t.Fatalf("Expected DuplicatesModel, got %T", next)
	}
	return dm, cmd
}

func TestNewDuplicatesModel(t *testing.T) {
	model := NewDuplicatesModel(testGroups())

	if len(model.sets) != 2 {
		t.Errorf("Expected 2 groups, got %d", len(model.sets))
	}
	if model.currentSet != 0 || model.cursor != 0 {
		t.Errorf("Expected to start at group 0 file 0, got %d/%d", model.currentSet, model.cursor)
	}

	set := model.sets[1]
	if set.Hash != "DEF456" {
		t.Errorf("Expected hash 'DEF456', got '%s'", set.Hash)
	}
	if len(set.Selected) != 3 || len(set.Details) != 3 {
		t.Errorf("Expected 3 selection and detail slots, got %d and %d", len(set.Selected), len(set.Details))
	}
	for i, selected := range set.Selected {
		if selected {
			t.Errorf("Expected file %d to be unselected by default", i)
		}
	}
	// files do not exist, so no header details
	if set.Details[0] != "" {
		t.Errorf("Expected empty details for missing file, got %q", set.Details[0])
	}
}

func TestNewDuplicatesModelEmptyInput(t *testing.T) {
	model := NewDuplicatesModel(nil)

	if len(model.sets) != 0 {
		t.Errorf("Expected 0 groups for empty input, got %d", len(model.sets))
	}
	if !strings.Contains(model.View(), "No similar wallpapers left") {
		t.Error("Expected the empty view")
	}
}

func TestDuplicatesModel_Navigation(t *testing.T) {
	m := NewDuplicatesModel(testGroups())

	m, _ = updateDup(t, m, keyRunes("j"))
	m, _ = updateDup(t, m, keyRunes("j")) // clamps at the last file
	if m.cursor != 1 {
		t.Errorf("Expected cursor 1, got %d", m.cursor)
	}

	m, _ = updateDup(t, m, keyRunes("n"))
	if m.currentSet != 1 || m.cursor != 0 {
		t.Errorf("Expected group 1 file 0, got %d/%d", m.currentSet, m.cursor)
	}

	m, _ = updateDup(t, m, keyRunes("n"))
	if m.currentSet != 1 {
		t.Errorf("Expected to stay on the last group, got %d", m.currentSet)
	}

	m, _ = updateDup(t, m, keyRunes("p"))
	if m.currentSet != 0 {
		t.Errorf("Expected group 0, got %d", m.currentSet)
	}
}

func TestDuplicatesModel_SelectAllKeepsFirst(t *testing.T) {
	m := NewDuplicatesModel(testGroups())
	m, _ = updateDup(t, m, keyRunes("n"))
	m, _ = updateDup(t, m, keyRunes("a"))

	want := []bool{false, true, true}
	for i, got := range m.sets[1].Selected {
		if got != want[i] {
			t.Errorf("File %d: expected selected=%v, got %v", i, want[i], got)
		}
	}

	m, _ = updateDup(t, m, keyRunes("c"))
	for i, got := range m.sets[1].Selected {
		if got {
			t.Errorf("Expected file %d to be cleared", i)
		}
	}
}

func TestDuplicatesModel_EnterWithoutSelection(t *testing.T) {
	m := NewDuplicatesModel(testGroups())

	m, cmd := updateDup(t, m, keyEnter)
	if m.confirming || cmd != nil {
		t.Error("Expected nothing to happen without a selection")
	}
}

func TestDuplicatesModel_DeleteFlow(t *testing.T) {
	var removed []string
	m := NewDuplicatesModel(testGroups())
	m.remove = func(path string) error {
		removed = append(removed, path)
		return nil
	}

	// Select a2 in the first group and b2 in the second
	m, _ = updateDup(t, m, keyRunes("j"))
	m, _ = updateDup(t, m, keySpace)
	m, _ = updateDup(t, m, keyRunes("n"))
	m, _ = updateDup(t, m, keyRunes("j"))
	m, _ = updateDup(t, m, keySpace)

	m, _ = updateDup(t, m, keyEnter)
	if !m.confirming {
		t.Fatal("Expected confirmation dialog")
	}
	if !strings.Contains(m.View(), "Delete 2 wallpaper(s)?") {
		t.Errorf("Unexpected confirmation view:\n%s", m.View())
	}

	m, cmd := updateDup(t, m, keyRunes("y"))
	if cmd == nil {
		t.Fatal("Expected a deletion command")
	}
	m, _ = updateDup(t, m, cmd())

	if strings.Join(removed, ",") != "/tmp/a2,/tmp/b2" {
		t.Errorf("Unexpected removals: %v", removed)
	}
	// first group drops to one file and disappears
	if len(m.sets) != 1 {
		t.Fatalf("Expected 1 group left, got %d", len(m.sets))
	}
	if got := strings.Join(m.sets[0].Files, ","); got != "/tmp/b1,/tmp/b3" {
		t.Errorf("Expected remaining files /tmp/b1,/tmp/b3, got %s", got)
	}
	if len(m.Deleted()) != 2 {
		t.Errorf("Expected 2 deleted files, got %d", len(m.Deleted()))
	}
	if m.currentSet != 0 {
		t.Errorf("Expected currentSet to be clamped to 0, got %d", m.currentSet)
	}
}

func TestDuplicatesModel_CancelDeletion(t *testing.T) {
	m := NewDuplicatesModel(testGroups())
	m.remove = func(string) error {
		t.Error("Expected no removal after cancel")
		return nil
	}

	m, _ = updateDup(t, m, keySpace)
	m, _ = updateDup(t, m, keyEnter)
	m, cmd := updateDup(t, m, keyRunes("n"))

	if m.confirming || cmd != nil || m.pending != nil {
		t.Error("Expected cancel to clear the pending deletion")
	}
}

func TestDuplicatesModel_DeleteFailure(t *testing.T) {
	m := NewDuplicatesModel(testGroups())
	m.remove = func(path string) error {
		if path == "/tmp/b3" {
			return errors.New("permission denied")
		}
		return nil
	}

	m, _ = updateDup(t, m, keyRunes("n"))
	m, _ = updateDup(t, m, keyRunes("j"))
	m, _ = updateDup(t, m, keySpace) // b2
	m, _ = updateDup(t, m, keyRunes("j"))
	m, _ = updateDup(t, m, keySpace) // b3
	m, _ = updateDup(t, m, keyEnter)
	m, cmd := updateDup(t, m, keyRunes("y"))
	m, _ = updateDup(t, m, cmd())

	if len(m.Deleted()) != 1 || m.Deleted()[0] != "/tmp/b2" {
		t.Errorf("Expected only /tmp/b2 deleted, got %v", m.Deleted())
	}
	if len(m.sets) != 2 {
		t.Fatalf("Expected both groups to remain, got %d", len(m.sets))
	}
	if !strings.Contains(m.View(), "permission denied") {
		t.Error("Expected the failure to be rendered")
	}
}

func TestDuplicatesModel_Quit(t *testing.T) {
	m := NewDuplicatesModel(nil)

	m, cmd := updateDup(t, m, keyRunes("q"))
	if !isQuit(cmd) {
		t.Error("Expected q to quit")
	}
	if m.View() != "Goodbye!\n" {
		t.Errorf("Unexpected quit view %q", m.View())
	}
}
