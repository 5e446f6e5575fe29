package sniff

import (
	"bufio"
	"encoding/binary"
	"io"
)

// pngCheck is the CRLF, EOF, LF tail of the PNG signature at bytes 4..8
const pngCheck = 0x0D0A1A0A

// maxJPEGSegments bounds the marker scan so malformed files cannot loop forever
const maxJPEGSegments = 1024

func decodePNG(head []byte) (Size, bool) {
	if len(head) < HeaderSize {
		return Size{}, false
	}
	if binary.BigEndian.Uint32(head[4:8]) != pngCheck {
		return Size{}, false
	}
	return Size{
		Width:  binary.BigEndian.Uint32(head[16:20]),
		Height: binary.BigEndian.Uint32(head[20:24]),
	}, true
}

func decodeGIF(head []byte) (Size, bool) {
	if len(head) < 10 {
		return Size{}, false
	}
	return Size{
		Width:  uint32(binary.LittleEndian.Uint16(head[6:8])),
		Height: uint32(binary.LittleEndian.Uint16(head[8:10])),
	}, true
}

// decodeJPEG walks the segment chain from the start of the file until a
// Start-Of-Frame marker (0xC0..0xCF) and reads the frame height and width.
func decodeJPEG(r *bufio.Reader) (Size, bool) {
	skip := 2 // SOI
	var marker byte

	for i := 0; !isSOF(marker); i++ {
		if i >= maxJPEGSegments || skip < 0 {
			return Size{}, false
		}
		if _, err := r.Discard(skip); err != nil {
			return Size{}, false
		}

		b, err := r.ReadByte()
		if err != nil {
			return Size{}, false
		}
		for b == 0xFF {
			if b, err = r.ReadByte(); err != nil {
				return Size{}, false
			}
		}
		marker = b

		var length [2]byte
		if _, err := io.ReadFull(r, length[:]); err != nil {
			return Size{}, false
		}
		// the length field counts itself
		skip = int(binary.BigEndian.Uint16(length[:])) - 2
	}

	// sample precision
	if _, err := r.Discard(1); err != nil {
		return Size{}, false
	}

	var frame [4]byte
	if _, err := io.ReadFull(r, frame[:]); err != nil {
		return Size{}, false
	}

	return Size{
		Height: uint32(binary.BigEndian.Uint16(frame[0:2])),
		Width:  uint32(binary.BigEndian.Uint16(frame[2:4])),
	}, true
}

func isSOF(marker byte) bool {
	return marker >= 0xC0 && marker <= 0xCF
}
