// Package sniff reads image dimensions from the first bytes of a file
// without decoding the image.
package sniff

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// HeaderSize is the number of leading bytes every probe needs
const HeaderSize = 24

// DetectFormat maps the magic number at the start of head to a Format
func DetectFormat(head []byte) Format {
	// Walk up the MIME tree so subtypes (e.g. APNG) resolve to their container
	for m := mimetype.Detect(head); m != nil; m = m.Parent() {
		switch {
		case m.Is("image/png"):
			return FormatPNG
		case m.Is("image/gif"):
			return FormatGIF
		case m.Is("image/jpeg"):
			return FormatJPEG
		}
	}
	return FormatUnknown
}

// Probe opens path and reads its image header.
// Files that are too short or not a recognised image yield an Info with Known == false
// and a nil error; only failures to open or read the file are returned as errors.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ProbeReader(f)
}

// ProbeReader reads an image header from r, which must be positioned at the start of the image
func ProbeReader(r io.Reader) (Info, error) {
	head := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, head); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Info{}, nil
		}
		return Info{}, fmt.Errorf("failed to read header: %w", err)
	}

	info := Info{Format: DetectFormat(head)}

	switch info.Format {
	case FormatPNG:
		info.Size, info.Known = decodePNG(head)
	case FormatGIF:
		info.Size, info.Known = decodeGIF(head)
	case FormatJPEG:
		// The segment scan starts from offset 0, so replay the header in front of the rest
		stream := bufio.NewReader(io.MultiReader(bytes.NewReader(head), r))
		info.Size, info.Known = decodeJPEG(stream)
	}

	return info, nil
}
