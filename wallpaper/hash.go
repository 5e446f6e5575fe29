package wallpaper

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corona10/goimagehash"
	"github.com/lepinkainen/spotlight/sniff"
)

// DefaultSimilarityThreshold is the largest Hamming distance between perceptual hashes
// that still counts as the same picture
const DefaultSimilarityThreshold = 10

// SimilarGroup is a set of images whose perceptual hashes are within the threshold of the first one
type SimilarGroup struct {
	Hash  string
	Files []string
}

// CalculatePerceptualHash decodes an image file and returns its perceptual hash
func CalculatePerceptualHash(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}

	return hash, nil
}

// FindSimilarImages hashes every recognised image directly inside directory and groups
// near-duplicates. Only groups with two or more files are returned, in directory order.
func FindSimilarImages(directory string, threshold int, logger *slog.Logger) ([]SimilarGroup, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	type cluster struct {
		hash  *goimagehash.ImageHash
		files []string
	}
	var clusters []*cluster

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(directory, entry.Name())

		info, err := sniff.Probe(path)
		if err != nil || info.Format == sniff.FormatUnknown {
			continue
		}

		hash, err := CalculatePerceptualHash(path)
		if err != nil {
			logger.Warn("Skipping image", "file", entry.Name(), "error", err)
			continue
		}

		var home *cluster
		for _, c := range clusters {
			distance, err := c.hash.Distance(hash)
			if err == nil && distance <= threshold {
				home = c
				break
			}
		}
		if home == nil {
			home = &cluster{hash: hash}
			clusters = append(clusters, home)
		}
		home.files = append(home.files, path)
	}

	var groups []SimilarGroup
	for _, c := range clusters {
		if len(c.files) < 2 {
			continue
		}
		groups = append(groups, SimilarGroup{
			Hash:  fmt.Sprintf("%016X", c.hash.GetHash()),
			Files: c.files,
		})
	}

	return groups, nil
}
