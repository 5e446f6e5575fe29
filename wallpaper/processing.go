package wallpaper

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lepinkainen/spotlight/sniff"
)

// Extract copies every wallpaper in opts.Source whose orientation matches opts.Filter
// into opts.Dest as <name>.jpg.
//
// Only setup problems are returned as errors. Failures on individual files are logged,
// collected in Result.Errors and do not stop the scan.
func Extract(opts Options) (*Result, error) {
	if !opts.Filter.Any() {
		return nil, ErrNoOrientation
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	minSize := opts.MinSize
	if minSize <= 0 {
		minSize = DefaultMinSize
	}

	candidates, err := FindCandidates(opts.Source, minSize)
	if err != nil {
		return nil, &SetupError{Op: "list source directory", Path: opts.Source, Err: err}
	}

	if err := os.MkdirAll(opts.Dest, 0o755); err != nil {
		return nil, &SetupError{Op: "create output directory", Path: opts.Dest, Err: err}
	}

	res := &Result{
		Source:     opts.Source,
		Dest:       opts.Dest,
		Candidates: len(candidates),
	}

	logger.Debug("Scanning asset cache",
		"source", opts.Source,
		"candidates", len(candidates),
		"landscape", opts.Filter.Landscape,
		"portrait", opts.Filter.Portrait)

	if opts.Observer != nil {
		opts.Observer.Started(len(candidates))
	}

	for _, c := range candidates {
		outcome := processCandidate(c, opts.Dest, opts.Filter)

		switch outcome.Status {
		case StatusCopied:
			res.Copied = append(res.Copied, outcome.Dest)
			logger.Debug("Copied wallpaper", "file", c.Name, "orientation", outcome.Orientation.String())
		case StatusFailed:
			res.Errors = append(res.Errors, FileError{Name: c.Name, Err: outcome.Err})
			logger.Warn("Error processing file", "file", c.Name, "error", outcome.Err)
		default:
			res.Skipped++
		}

		if opts.Observer != nil {
			opts.Observer.Processed(outcome)
		}
	}

	logger.Info("Spotlight images have been copied",
		"dest", opts.Dest,
		"copied", len(res.Copied),
		"skipped", res.Skipped,
		"errors", len(res.Errors))

	if opts.Observer != nil {
		opts.Observer.Completed(res)
	}

	return res, nil
}

// processCandidate classifies a single cache entry and copies it when the filter accepts it
func processCandidate(c Candidate, destDir string, filter Filter) Outcome {
	outcome := Outcome{Candidate: c}

	info, err := sniff.Probe(c.Path)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	outcome.Orientation = info.Orientation()
	if !filter.Accepts(outcome.Orientation) {
		outcome.Status = StatusSkipped
		return outcome
	}

	dest := filepath.Join(destDir, c.Name+CopySuffix)
	if err := copyFile(c.Path, dest); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	outcome.Status = StatusCopied
	outcome.Dest = dest
	return outcome
}
