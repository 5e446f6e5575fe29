package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lepinkainen/spotlight/sniff"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// SimilarSet is one group of visually similar wallpapers in the duplicates manager
type SimilarSet struct {
	Hash     string
	Files    []string
	Details  []string // "1920x1080 landscape" per file, empty when the header is unreadable
	Selected []bool
}

// DuplicatesModel lets the user pick extra copies of the same wallpaper and delete them
type DuplicatesModel struct {
	sets       []SimilarSet
	currentSet int
	cursor     int

	width  int
	height int

	confirming bool
	pending    []string
	deleted    []string
	lastErr    error
	showHelp   bool

	remove   func(string) error
	quitting bool
}

// NewDuplicatesModel builds the manager from the groups found by wallpaper.FindSimilarImages
func NewDuplicatesModel(groups []wallpaper.SimilarGroup) DuplicatesModel {
	sets := make([]SimilarSet, 0, len(groups))
	for _, g := range groups {
		details := make([]string, len(g.Files))
		for i, file := range g.Files {
			details[i] = describeImage(file)
		}
		sets = append(sets, SimilarSet{
			Hash:     g.Hash,
			Files:    append([]string(nil), g.Files...),
			Details:  details,
			Selected: make([]bool, len(g.Files)),
		})
	}

	return DuplicatesModel{
		sets:     sets,
		showHelp: true,
		remove:   os.Remove,
	}
}

func describeImage(path string) string {
	info, err := sniff.Probe(path)
	if err != nil || !info.Known {
		return ""
	}
	return fmt.Sprintf("%s %s", info.Size, info.Orientation())
}

// Deleted returns every file removed during the session
func (m DuplicatesModel) Deleted() []string { return m.deleted }

// Init implements tea.Model
func (m DuplicatesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m DuplicatesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirmationInput(msg)
		}
		return m.handleNormalInput(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case DeletionCompleteMsg:
		m.handleDeletionComplete(msg)
	}

	return m, nil
}

func (m DuplicatesModel) handleNormalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	if len(m.sets) == 0 {
		return m, nil
	}

	set := &m.sets[m.currentSet]

	switch key {
	case "h", "?":
		m.showHelp = !m.showHelp

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(set.Files)-1 {
			m.cursor++
		}

	case "left", "p":
		if m.currentSet > 0 {
			m.currentSet--
			m.cursor = 0
		}

	case "right", "n":
		if m.currentSet < len(m.sets)-1 {
			m.currentSet++
			m.cursor = 0
		}

	case " ":
		set.Selected[m.cursor] = !set.Selected[m.cursor]

	case "a":
		// keep the first file, mark the rest
		for i := range set.Selected {
			set.Selected[i] = i > 0
		}

	case "c":
		for i := range set.Selected {
			set.Selected[i] = false
		}

	case "enter":
		return m.confirmDeletion()
	}

	return m, nil
}

func (m DuplicatesModel) confirmDeletion() (tea.Model, tea.Cmd) {
	var selected []string
	for _, set := range m.sets {
		for i, ok := range set.Selected {
			if ok {
				selected = append(selected, set.Files[i])
			}
		}
	}
	if len(selected) == 0 {
		return m, nil
	}

	m.pending = selected
	m.confirming = true
	return m, nil
}

func (m DuplicatesModel) handleConfirmationInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		return m, m.deleteCmd(m.pending)

	case "n", "N", "ctrl+c", "esc":
		m.confirming = false
		m.pending = nil
	}

	return m, nil
}

// deleteCmd removes files in order and stops at the first failure
func (m DuplicatesModel) deleteCmd(files []string) tea.Cmd {
	remove := m.remove
	return func() tea.Msg {
		for _, file := range files {
			if err := remove(file); err != nil {
				return DeletionCompleteMsg{FilePath: file, Success: false, Error: err}
			}
		}
		return DeletionCompleteMsg{Success: true}
	}
}

func (m *DuplicatesModel) handleDeletionComplete(msg DeletionCompleteMsg) {
	gone := make(map[string]bool, len(m.pending))
	for _, file := range m.pending {
		if !msg.Success && file == msg.FilePath {
			// everything after the failing file was never attempted
			break
		}
		gone[file] = true
	}
	if !msg.Success {
		m.lastErr = fmt.Errorf("failed to delete %s: %w", filepath.Base(msg.FilePath), msg.Error)
	} else {
		m.lastErr = nil
	}
	m.pending = nil

	var kept []SimilarSet
	for _, set := range m.sets {
		var next SimilarSet
		next.Hash = set.Hash
		for i, file := range set.Files {
			if gone[file] {
				m.deleted = append(m.deleted, file)
				continue
			}
			next.Files = append(next.Files, file)
			next.Details = append(next.Details, set.Details[i])
			next.Selected = append(next.Selected, set.Selected[i])
		}
		if len(next.Files) > 1 {
			kept = append(kept, next)
		}
	}
	m.sets = kept

	if m.currentSet >= len(m.sets) {
		m.currentSet = max(len(m.sets)-1, 0)
	}
	if len(m.sets) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.sets[m.currentSet].Files) {
		m.cursor = len(m.sets[m.currentSet].Files) - 1
	}
}

// View implements tea.Model
func (m DuplicatesModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if len(m.sets) == 0 {
		return m.renderNoSets()
	}

	if m.confirming {
		return m.renderConfirmationDialog()
	}

	return m.renderMainView()
}

func (m DuplicatesModel) renderNoSets() string {
	style := SuccessStyle.MarginTop(2).MarginLeft(2)
	return style.Render(fmt.Sprintf("✅ No similar wallpapers left (%d deleted)\n\nPress 'q' to quit.", len(m.deleted)))
}

func (m DuplicatesModel) renderConfirmationDialog() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("⚠️  Confirm Deletion"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("Delete %d wallpaper(s)?\n\n", len(m.pending)))

	for _, file := range m.pending {
		content.WriteString(fmt.Sprintf("  • %s\n", filepath.Base(file)))
	}

	content.WriteString("\n")
	content.WriteString(ErrorStyle.Render("This action cannot be undone!"))
	content.WriteString("\n\n")
	content.WriteString("Press 'y' to confirm, 'n' to cancel")

	return content.String()
}

func (m DuplicatesModel) renderMainView() string {
	var content strings.Builder

	header := fmt.Sprintf("Spotlight - Similar Wallpapers (Group %d of %d)", m.currentSet+1, len(m.sets))
	content.WriteString(HeaderStyle.Render(header))
	content.WriteString("\n\n")

	set := m.sets[m.currentSet]
	content.WriteString(InfoStyle.Render(fmt.Sprintf("pHash: %s (%d files)", set.Hash, len(set.Files))))
	content.WriteString("\n\n")

	content.WriteString(m.renderFileList(set))
	content.WriteString("\n")

	if m.lastErr != nil {
		content.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ %v", m.lastErr)))
		content.WriteString("\n\n")
	}

	if m.showHelp {
		content.WriteString(m.renderHelp())
	} else {
		content.WriteString("Press 'h' for help")
	}

	return content.String()
}

func (m DuplicatesModel) renderFileList(set SimilarSet) string {
	var content strings.Builder

	for i, file := range set.Files {
		var line strings.Builder

		if set.Selected[i] {
			line.WriteString("[✓] ")
		} else {
			line.WriteString("[ ] ")
		}

		name := filepath.Base(file)
		style := lipgloss.NewStyle()
		if set.Selected[i] {
			style = SuccessStyle
		}
		if i == m.cursor {
			style = style.Reverse(true)
		}
		line.WriteString(style.Render(name))

		if set.Details[i] != "" {
			line.WriteString(fmt.Sprintf(" (%s)", set.Details[i]))
		}
		content.WriteString(line.String())
		content.WriteString("\n")
	}

	return content.String()
}

func (m DuplicatesModel) renderHelp() string {
	help := []string{
		"",
		"Navigation:",
		"  ↑/↓ or j/k   Move between files in the group",
		"  ←/→ or p/n   Previous/Next group",
		"",
		"Selection:",
		"  Space        Toggle file selection",
		"  a            Select all but the first file",
		"  c            Clear selections in group",
		"",
		"Actions:",
		"  Enter        Delete selected files from all groups (with confirmation)",
		"  h/?          Toggle this help",
		"  q            Quit",
		"",
	}

	return strings.Join(help, "\n")
}
