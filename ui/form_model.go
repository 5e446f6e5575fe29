package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// NoOrientationWarning is shown when the folder action is used with both toggles off
const NoOrientationWarning = "Select at least one aspect ratio to extract."

// Selection is what the form hands to the extractor
type Selection struct {
	Filter wallpaper.Filter
	Dest   string
}

// ExtractFunc runs an extraction for a confirmed selection, reporting progress to obs
type ExtractFunc func(sel Selection, obs wallpaper.Observer) (*wallpaper.Result, error)

type formState int

const (
	stateSelect formState = iota
	stateFolder
	stateExtracting
	stateDone
	stateCancelled
)

// focus targets on the selection screen
const (
	focusLandscape = iota
	focusPortrait
	focusButton
	focusCount
)

// FormOptions configures a FormModel
type FormOptions struct {
	DefaultDest string
	Extract     ExtractFunc
	Version     string
}

// FormModel is the interactive selection form: two orientation toggles and an output folder prompt
type FormModel struct {
	// Selection state
	landscape bool
	portrait  bool
	focus     int
	warning   string

	// Folder prompt
	input textinput.Model

	// Extraction state
	state     formState
	selection Selection
	total     int
	processed int
	outcomes  []OutcomeItem
	result    *wallpaper.Result
	err       error

	// UI components
	bar     progress.Model
	results list.Model

	// Layout
	width  int
	height int

	extract ExtractFunc
	send    func(tea.Msg)
	version string
}

// NewFormModel creates a form with both toggles off and focus on the landscape toggle
func NewFormModel(opts FormOptions) FormModel {
	input := textinput.New()
	input.Placeholder = "output folder"
	input.Prompt = "📁 "
	input.CharLimit = 1024
	input.Width = 60
	input.SetValue(opts.DefaultDest)

	results := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	results.Title = "Processed Files"
	results.SetShowHelp(false)

	return FormModel{
		input:   input,
		bar:     progress.New(progress.WithDefaultGradient()),
		results: results,
		extract: opts.Extract,
		version: opts.Version,
	}
}

// RunForm runs the form until the user quits and returns the final model
func RunForm(m FormModel, opts ...tea.ProgramOption) (FormModel, error) {
	var p *tea.Program
	m.send = func(msg tea.Msg) { p.Send(msg) }
	p = tea.NewProgram(m, opts...)

	final, err := p.Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(FormModel)
	if !ok {
		return m, fmt.Errorf("unexpected model type %T", final)
	}
	return fm, nil
}

// Filter returns the current toggle state
func (m FormModel) Filter() wallpaper.Filter {
	return wallpaper.Filter{Landscape: m.landscape, Portrait: m.portrait}
}

// Warning returns the message shown to the user, if any
func (m FormModel) Warning() string { return m.warning }

// Cancelled reports whether the user left without extracting
func (m FormModel) Cancelled() bool { return m.state == stateCancelled }

// Done reports whether an extraction finished
func (m FormModel) Done() bool { return m.state == stateDone }

// Selection returns the confirmed selection once the folder prompt was accepted
func (m FormModel) Selection() (Selection, bool) {
	if m.state == stateExtracting || m.state == stateDone {
		return m.selection, true
	}
	return Selection{}, false
}

// Result returns the extraction result and error once extraction finished
func (m FormModel) Result() (*wallpaper.Result, error) {
	return m.result, m.err
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetSize(msg.Width-4, msg.Height/2)
		return m, nil

	case ExtractionStartedMsg:
		m.total = msg.Total
		return m, nil

	case FileProcessedMsg:
		m.processed++
		m.outcomes = append(m.outcomes, OutcomeItem{Outcome: msg.Outcome})
		items := make([]list.Item, len(m.outcomes))
		for i, item := range m.outcomes {
			items[i] = item
		}
		m.results.SetItems(items)
		return m, nil

	case ExtractionDoneMsg:
		m.state = stateDone
		m.result = msg.Result
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSelect:
			return m.handleSelectInput(msg)
		case stateFolder:
			return m.handleFolderInput(msg)
		case stateDone:
			return m.handleDoneInput(msg)
		}
	}

	return m, nil
}

func (m FormModel) handleSelectInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.state = stateCancelled
		return m, tea.Quit

	case "up", "k", "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount

	case "down", "j", "tab":
		m.focus = (m.focus + 1) % focusCount

	case "l":
		m.landscape = !m.landscape
		m.warning = ""

	case "p":
		m.portrait = !m.portrait
		m.warning = ""

	case "o":
		return m.selectOutputFolder()

	case " ", "enter":
		switch m.focus {
		case focusLandscape:
			m.landscape = !m.landscape
			m.warning = ""
		case focusPortrait:
			m.portrait = !m.portrait
			m.warning = ""
		case focusButton:
			return m.selectOutputFolder()
		}
	}

	return m, nil
}

// selectOutputFolder gates the folder prompt on at least one orientation being selected
func (m FormModel) selectOutputFolder() (tea.Model, tea.Cmd) {
	if !m.Filter().Any() {
		m.warning = NoOrientationWarning
		return m, nil
	}

	m.warning = ""
	m.state = stateFolder
	return m, m.input.Focus()
}

func (m FormModel) handleFolderInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.state = stateCancelled
		return m, tea.Quit

	case "enter":
		dest := strings.TrimSpace(m.input.Value())
		if dest == "" {
			m.state = stateCancelled
			return m, tea.Quit
		}

		m.input.Blur()
		m.selection = Selection{Filter: m.Filter(), Dest: dest}
		m.state = stateExtracting
		return m, m.extractCmd(m.selection)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m FormModel) handleDoneInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc", "enter":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m FormModel) extractCmd(sel Selection) tea.Cmd {
	extract := m.extract
	obs := teaObserver{send: m.send}
	return func() tea.Msg {
		if extract == nil {
			return ExtractionDoneMsg{Err: fmt.Errorf("no extractor configured")}
		}
		res, err := extract(sel, obs)
		return ExtractionDoneMsg{Result: res, Err: err}
	}
}

// View implements tea.Model
func (m FormModel) View() string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(fmt.Sprintf("Windows Spotlight Image Extractor %s", m.version)))
	content.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		content.WriteString(m.renderSelect())
	case stateFolder:
		content.WriteString("Select Output Folder:\n\n")
		content.WriteString(m.input.View())
		content.WriteString("\n\n")
		content.WriteString(HelpStyle.Render("enter confirm • empty or esc cancels"))
	case stateExtracting:
		content.WriteString(ProcessingStyle.Render(fmt.Sprintf("📷 Copying wallpapers to %s", m.selection.Dest)))
		content.WriteString("\n\n")
		content.WriteString(m.renderProgress())
	case stateDone:
		content.WriteString(m.renderDone())
	case stateCancelled:
		content.WriteString("No output folder selected.\n")
	}

	return content.String()
}

func (m FormModel) renderSelect() string {
	var content strings.Builder

	content.WriteString("Select Aspect Ratios:  ")
	content.WriteString(m.renderToggle("Landscape", m.landscape, m.focus == focusLandscape))
	content.WriteString("  ")
	content.WriteString(m.renderToggle("Portrait", m.portrait, m.focus == focusPortrait))
	content.WriteString("\n\n")

	button := "[ Select Output Folder ]"
	if m.focus == focusButton {
		button = FocusStyle.Render(button)
	}
	content.WriteString(button)
	content.WriteString("\n\n")

	if m.warning != "" {
		content.WriteString(WarningStyle.Render("⚠️  " + m.warning))
		content.WriteString("\n\n")
	}

	content.WriteString(HelpStyle.Render("tab/↑↓ move • space toggle • l/p toggle • o or enter on button choose folder • q quit"))
	return content.String()
}

func (m FormModel) renderToggle(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[✓]"
	}
	text := fmt.Sprintf("%s %s", box, label)
	if focused {
		return FocusStyle.Render(text)
	}
	if checked {
		return SuccessStyle.Render(text)
	}
	return text
}

func (m FormModel) renderProgress() string {
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	return fmt.Sprintf("Progress: %s (%d/%d)", m.bar.ViewAs(percent), m.processed, m.total)
}

func (m FormModel) renderDone() string {
	var content strings.Builder

	if m.err != nil {
		content.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString(HelpStyle.Render("press q to quit"))
		return content.String()
	}

	content.WriteString(SuccessStyle.Render(fmt.Sprintf("✅ Spotlight images have been copied to %s", m.selection.Dest)))
	content.WriteString("\n")
	if m.result != nil {
		content.WriteString(InfoStyle.Render(fmt.Sprintf("Copied: %d, Skipped: %d, Errors: %d",
			len(m.result.Copied), m.result.Skipped, len(m.result.Errors))))
	}
	content.WriteString("\n\n")

	if len(m.outcomes) > 0 {
		content.WriteString(m.results.View())
		content.WriteString("\n")
	}

	content.WriteString(HelpStyle.Render("↑/↓ browse • q quit"))
	return content.String()
}
