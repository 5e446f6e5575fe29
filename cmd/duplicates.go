package cmd

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/spotlight/types"
	"github.com/lepinkainen/spotlight/ui"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// DuplicatesCmd finds wallpapers that are the same picture under different cache names.
// Spotlight re-delivers images, so an output folder filled over several runs collects copies.
type DuplicatesCmd struct {
	Directory string `arg:"" name:"directory" help:"Folder of extracted wallpapers to scan" type:"existingdir" default:"."`
	Threshold int    `help:"Hamming distance threshold for similarity (0-64)" default:"10"`
	NoTUI     bool   `name:"no-tui" help:"Disable interactive TUI and just list similar wallpapers"`
}

func (cmd *DuplicatesCmd) Run(appCtx *types.AppContext) error {
	if cmd.Threshold < 0 || cmd.Threshold > 64 {
		return fmt.Errorf("threshold must be between 0 and 64, got %d", cmd.Threshold)
	}

	out := appCtx.Out()
	fmt.Fprintln(out, ui.HeaderStyle.Render(fmt.Sprintf("Windows Spotlight Image Extractor %s", appCtx.GetVersion())))
	fmt.Fprintf(out, "Scanning %s for similar wallpapers...\n", cmd.Directory)

	groups, err := wallpaper.FindSimilarImages(cmd.Directory, cmd.Threshold, appCtx.GetLogger())
	if err != nil {
		return fmt.Errorf("failed to find similar wallpapers: %w", err)
	}

	if len(groups) == 0 {
		fmt.Fprintf(out, "%s\n", ui.SuccessStyle.Render("✅ No similar wallpapers found"))
		return nil
	}

	if cmd.NoTUI {
		fmt.Fprintf(out, "\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d group(s) of similar wallpapers:", len(groups))))
		for _, g := range groups {
			fmt.Fprintf(out, "\n🔸 pHash %s (%d files):\n", g.Hash, len(g.Files))
			for _, file := range g.Files {
				fmt.Fprintf(out, "  %s\n", filepath.Base(file))
			}
		}
		return nil
	}

	p := tea.NewProgram(ui.NewDuplicatesModel(groups), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ui.DuplicatesModel); ok && len(m.Deleted()) > 0 {
		fmt.Fprintf(out, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("🗑️  Deleted %d wallpaper(s)", len(m.Deleted()))))
	}
	return nil
}
