package cmd

import (
	"fmt"
	"os"

	"github.com/lepinkainen/spotlight/types"
	"github.com/lepinkainen/spotlight/ui"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// ExtractCmd copies cached Spotlight wallpapers without the interactive form
type ExtractCmd struct {
	Output     string `arg:"" name:"output" help:"Folder to copy wallpapers into (created if missing)" type:"path"`
	Landscape  bool   `short:"l" help:"Extract landscape wallpapers"`
	Portrait   bool   `short:"p" help:"Extract portrait wallpapers"`
	Source     string `help:"Asset cache to read instead of the current user's Spotlight cache" type:"path"`
	MinSize    int64  `name:"min-size" help:"Skip cache entries of this many bytes or fewer" default:"102400"`
	NoProgress bool   `name:"no-progress" help:"Disable the progress bar"`
}

func (cmd *ExtractCmd) Run(appCtx *types.AppContext) error {
	out := appCtx.Out()
	fmt.Fprintln(out, ui.HeaderStyle.Render(fmt.Sprintf("Windows Spotlight Image Extractor %s", appCtx.GetVersion())))

	filter := wallpaper.Filter{Landscape: cmd.Landscape, Portrait: cmd.Portrait}
	if !filter.Any() {
		fmt.Fprintf(out, "%s\n", ui.WarningStyle.Render("⚠️  "+ui.NoOrientationWarning+" Use --landscape and/or --portrait."))
		return wallpaper.ErrNoOrientation
	}

	source, err := resolveSource(cmd.Source)
	if err != nil {
		return err
	}

	opts := wallpaper.Options{
		Source:  source,
		Dest:    cmd.Output,
		Filter:  filter,
		MinSize: cmd.MinSize,
		Logger:  appCtx.GetLogger(),
	}
	if !cmd.NoProgress {
		opts.Observer = wallpaper.NewProgressObserver(os.Stderr)
	}

	fmt.Fprintln(out, ui.ProcessingStyle.Render(fmt.Sprintf("📷 Copying wallpapers from %s", source)))

	res, err := wallpaper.Extract(opts)
	if err != nil {
		return err
	}

	printSummary(out, res)
	return nil
}
