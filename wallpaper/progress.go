package wallpaper

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressObserver draws a console progress bar while Extract runs
type ProgressObserver struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewProgressObserver returns an observer that renders to w
func NewProgressObserver(w io.Writer) *ProgressObserver {
	return &ProgressObserver{w: w}
}

func (p *ProgressObserver) Started(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("📷 Extracting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *ProgressObserver) Processed(Outcome) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *ProgressObserver) Completed(*Result) {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
