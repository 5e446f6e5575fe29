package sniff

import "fmt"

// Format is an image container recognised by the header sniffer
type Format string

const (
	FormatUnknown Format = ""
	FormatPNG     Format = "png"
	FormatGIF     Format = "gif"
	FormatJPEG    Format = "jpeg"
)

func (f Format) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return string(f)
}

// Size holds pixel dimensions read from an image header
type Size struct {
	Width  uint32
	Height uint32
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Orientation classifies an image by comparing width and height
type Orientation int

const (
	Indeterminate Orientation = iota
	Landscape
	Portrait
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "indeterminate"
	}
}

// Info is the result of probing a file. Size is only meaningful when Known is true.
type Info struct {
	Format Format
	Size   Size
	Known  bool
}

// Orientation returns Landscape or Portrait for known, non-square images
func (i Info) Orientation() Orientation {
	switch {
	case IsLandscape(i):
		return Landscape
	case IsPortrait(i):
		return Portrait
	default:
		return Indeterminate
	}
}

// IsLandscape reports whether the image is known and wider than it is tall
func IsLandscape(i Info) bool {
	return i.Known && i.Size.Width > i.Size.Height
}

// IsPortrait reports whether the image is known and taller than it is wide
func IsPortrait(i Info) bool {
	return i.Known && i.Size.Height > i.Size.Width
}
