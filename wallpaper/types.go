package wallpaper

import (
	"log/slog"

	"github.com/lepinkainen/spotlight/sniff"
)

// DefaultMinSize separates full-resolution wallpapers from thumbnails and metadata blobs in the cache
const DefaultMinSize int64 = 100 * 1024

// CopySuffix is appended to every cache entry name; contents are copied unchanged
const CopySuffix = ".jpg"

// Filter selects which orientations to extract
type Filter struct {
	Landscape bool
	Portrait  bool
}

// Any reports whether at least one orientation is enabled
func (f Filter) Any() bool {
	return f.Landscape || f.Portrait
}

// Accepts reports whether an image with orientation o should be copied
func (f Filter) Accepts(o sniff.Orientation) bool {
	switch o {
	case sniff.Landscape:
		return f.Landscape
	case sniff.Portrait:
		return f.Portrait
	default:
		return false
	}
}

// Candidate is a regular file in the asset cache large enough to be a wallpaper
type Candidate struct {
	Path string
	Name string
	Size int64
}

// Status is the per-file result of an extraction
type Status int

const (
	StatusSkipped Status = iota
	StatusCopied
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Outcome describes what happened to one candidate
type Outcome struct {
	Candidate
	Orientation sniff.Orientation
	Status      Status
	Dest        string // set when Status is StatusCopied
	Err         error  // set when Status is StatusFailed
}

// Result aggregates an extraction run
type Result struct {
	Source     string
	Dest       string
	Candidates int
	Copied     []string
	Skipped    int
	Errors     []FileError
}

// Observer receives progress callbacks from Extract. All calls happen on the extracting goroutine.
type Observer interface {
	Started(total int)
	Processed(o Outcome)
	Completed(res *Result)
}

// Options configures a single extraction run
type Options struct {
	Source  string
	Dest    string
	Filter  Filter
	MinSize int64 // defaults to DefaultMinSize when <= 0

	Logger   *slog.Logger // defaults to slog.Default()
	Observer Observer     // optional
}
