package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/corona10/goimagehash"
	"github.com/lepinkainen/spotlight/sniff"
	"github.com/lepinkainen/spotlight/types"
	"github.com/lepinkainen/spotlight/ui"
	"github.com/lepinkainen/spotlight/wallpaper"
)

// PhashCmd compares specific images pairwise by perceptual hash.
// Lower distance means more similar; 0 is visually identical.
type PhashCmd struct {
	Files     []string `arg:"" name:"files" help:"Images to compare" type:"existingfile"`
	Threshold int      `help:"Hamming distance threshold for similarity (0-64)" default:"10"`
}

// Run hashes every recognised image and reports each pair within the threshold
func (cmd *PhashCmd) Run(appCtx *types.AppContext) error {
	out := appCtx.Out()
	if len(cmd.Files) < 2 {
		fmt.Fprintf(out, "%s\n", ui.ErrorStyle.Render("❌ Need at least 2 files to compare"))
		return nil
	}

	fmt.Fprintf(out, "%s\n", ui.InfoStyle.Render(fmt.Sprintf("Calculating perceptual hashes for %d files...", len(cmd.Files))))

	type fileHash struct {
		File string
		Hash *goimagehash.ImageHash
	}

	var hashes []fileHash

	for _, file := range cmd.Files {
		name := filepath.Base(file)
		info, err := sniff.Probe(file)
		if err != nil || !info.Known {
			fmt.Fprintf(out, "⚠️  %s is not a PNG, GIF or JPEG image, skipping\n", name)
			continue
		}

		hash, err := wallpaper.CalculatePerceptualHash(file)
		if err != nil {
			fmt.Fprintf(out, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error hashing %s: %v", name, err)))
			continue
		}

		hashes = append(hashes, fileHash{File: name, Hash: hash})
		fmt.Fprintf(out, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s %016X", name, hash.GetHash())))
	}

	fmt.Fprintf(out, "\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Comparing %d files for similarity (threshold: %d):", len(hashes), cmd.Threshold)))

	found := false
	for i := 0; i < len(hashes); i++ {
		for j := i + 1; j < len(hashes); j++ {
			distance, err := hashes[i].Hash.Distance(hashes[j].Hash)
			if err != nil {
				fmt.Fprintf(out, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error comparing %s and %s: %v", hashes[i].File, hashes[j].File, err)))
				continue
			}

			if distance <= cmd.Threshold {
				fmt.Fprintf(out, "🎯 Similar (distance %d): %s ↔ %s\n", distance, hashes[i].File, hashes[j].File)
				found = true
			}
		}
	}

	if !found {
		fmt.Fprintf(out, "%s\n", ui.SuccessStyle.Render("✅ No similar files found within threshold"))
	}

	return nil
}
