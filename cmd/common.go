package cmd

import (
	"fmt"
	"io"

	"github.com/lepinkainen/spotlight/ui"
	"github.com/lepinkainen/spotlight/utils"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// resolveSource picks the asset cache: the --source override if given, the current
// user's Spotlight cache otherwise
func resolveSource(source string) (string, error) {
	if source == "" {
		dir, err := utils.DefaultAssetDir()
		if err != nil {
			return "", err
		}
		source = dir
	}
	if err := utils.ValidateSourceDir(source); err != nil {
		return "", err
	}
	return source, nil
}

// printSummary writes the completion notice and per-file errors
func printSummary(w io.Writer, res *wallpaper.Result) {
	fmt.Fprintf(w, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Spotlight images have been copied to %s", res.Dest)))
	fmt.Fprintf(w, "%s\n", ui.InfoStyle.Render(fmt.Sprintf("Copied: %d, Skipped: %d, Errors: %d",
		len(res.Copied), res.Skipped, len(res.Errors))))

	for _, fe := range res.Errors {
		fmt.Fprintf(w, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s", fe.Error())))
	}
}
