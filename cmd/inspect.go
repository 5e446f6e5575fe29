package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lepinkainen/spotlight/sniff"
	"github.com/lepinkainen/spotlight/types"
	"github.com/lepinkainen/spotlight/ui"
)

// InspectCmd prints what the header sniffer sees in each file: format, size and orientation.
// Useful for checking why a cache entry was or was not extracted.
type InspectCmd struct {
	Files []string `arg:"" name:"files" help:"Files to inspect" type:"existingfile"`
}

func (cmd *InspectCmd) Run(appCtx *types.AppContext) error {
	out := appCtx.Out()
	fmt.Fprintf(out, "%s\n", ui.InfoStyle.Render(fmt.Sprintf("Inspecting %d files...", len(cmd.Files))))

	var recognised, unknown, failed int

	for _, file := range cmd.Files {
		name := filepath.Base(file)

		info, err := sniff.Probe(file)
		if err != nil {
			fmt.Fprintf(out, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %v", name, err)))
			failed++
			continue
		}

		if !info.Known {
			fmt.Fprintf(out, "⚠️  %s: unrecognised header\n", name)
			unknown++
			continue
		}

		fmt.Fprintf(out, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s: %s %s %s",
			name, info.Format, info.Size, info.Orientation())))
		recognised++
	}

	fmt.Fprintf(out, "\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Recognised: %d, Unknown: %d, Failed: %d",
		recognised, unknown, failed)))
	return nil
}
