package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// OutcomeItem is a list entry for one processed cache file
type OutcomeItem struct {
	Outcome wallpaper.Outcome
}

func (o OutcomeItem) FilterValue() string { return o.Outcome.Name }
func (o OutcomeItem) Title() string       { return o.Outcome.Name }
func (o OutcomeItem) Description() string {
	switch o.Outcome.Status {
	case wallpaper.StatusFailed:
		return fmt.Sprintf("❌ %v", o.Outcome.Err)
	case wallpaper.StatusCopied:
		return fmt.Sprintf("✓ %s → %s", o.Outcome.Orientation, o.Outcome.Dest)
	default:
		return fmt.Sprintf("⏭️  %s, skipped", o.Outcome.Orientation)
	}
}

// teaObserver forwards extraction progress into the running program
type teaObserver struct {
	send func(msg tea.Msg)
}

func (o teaObserver) Started(total int) {
	if o.send != nil {
		o.send(ExtractionStartedMsg{Total: total})
	}
}

func (o teaObserver) Processed(outcome wallpaper.Outcome) {
	if o.send != nil {
		o.send(FileProcessedMsg{Outcome: outcome})
	}
}

// Completed is a no-op: the extraction command itself returns ExtractionDoneMsg
func (o teaObserver) Completed(*wallpaper.Result) {}
