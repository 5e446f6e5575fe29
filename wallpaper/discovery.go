package wallpaper

import (
	"os"
	"path/filepath"
)

// FindCandidates lists the regular files directly inside directory whose size exceeds minSize.
// Entries are returned in name order. Symlinks are followed; anything that does not
// resolve to a regular file is skipped.
func FindCandidates(directory string, minSize int64) ([]Candidate, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(directory, entry.Name())

		fi, err := os.Stat(path)
		if err != nil {
			// dangling symlink or entry removed mid-scan
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		if fi.Size() <= minSize {
			continue
		}

		candidates = append(candidates, Candidate{
			Path: path,
			Name: entry.Name(),
			Size: fi.Size(),
		})
	}

	return candidates, nil
}
