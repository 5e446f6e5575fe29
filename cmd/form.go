package cmd

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/spotlight/types"
	"github.com/lepinkainen/spotlight/ui"
	"github.com/lepinkainen/spotlight/utils"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// FormCmd runs the interactive selection form
type FormCmd struct {
	Source  string `help:"Asset cache to read instead of the current user's Spotlight cache" type:"path"`
	MinSize int64  `name:"min-size" help:"Skip cache entries of this many bytes or fewer" default:"102400"`
}

func (cmd *FormCmd) Run(appCtx *types.AppContext) error {
	source, err := resolveSource(cmd.Source)
	if err != nil {
		return err
	}

	// stderr lines would tear the alt screen, so only log when writing to a file
	logger := appCtx.GetLogger()
	if appCtx == nil || !appCtx.LogToFile {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	model := ui.NewFormModel(ui.FormOptions{
		DefaultDest: utils.DefaultOutputDir(),
		Extract:     cmd.extractor(source, logger),
		Version:     appCtx.GetVersion(),
	})

	final, err := ui.RunForm(model, tea.WithAltScreen())
	if err != nil {
		return fmt.Errorf("failed to run form: %w", err)
	}

	out := appCtx.Out()
	if final.Cancelled() {
		fmt.Fprintln(out, "No output folder selected.")
		return nil
	}

	res, err := final.Result()
	if err != nil {
		return err
	}
	if res != nil {
		printSummary(out, res)
	}
	return nil
}

// extractor binds the form's selection to a wallpaper.Extract call on source
func (cmd *FormCmd) extractor(source string, logger *slog.Logger) ui.ExtractFunc {
	return func(sel ui.Selection, obs wallpaper.Observer) (*wallpaper.Result, error) {
		return wallpaper.Extract(wallpaper.Options{
			Source:   source,
			Dest:     sel.Dest,
			Filter:   sel.Filter,
			MinSize:  cmd.MinSize,
			Logger:   logger,
			Observer: obs,
		})
	}
}
