package wallpaper

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// jpegBytes builds a minimal JFIF stream with a SOF0 frame, padded with zeros to size bytes
func jpegBytes(width, height uint16, size int) []byte {
	buf := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	buf = append(buf, []byte("JFIF\x00")...)
	buf = append(buf, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00)
	buf = append(buf, 0xFF, 0xC0, 0x00, 0x11, 0x08)
	buf = binary.BigEndian.AppendUint16(buf, height)
	buf = binary.BigEndian.AppendUint16(buf, width)
	buf = append(buf, 0x03, 0x01, 0x22, 0x00, 0x02, 0x11, 0x01, 0x03, 0x11, 0x01)
	return pad(buf, size)
}

// pngBytes builds a PNG signature and IHDR chunk, padded with zeros to size bytes
func pngBytes(width, height uint32, size int) []byte {
	buf := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")
	buf = binary.BigEndian.AppendUint32(buf, width)
	buf = binary.BigEndian.AppendUint32(buf, height)
	buf = append(buf, 8, 2, 0, 0, 0)
	return pad(buf, size)
}

// gifBytes builds a GIF89a logical screen descriptor, padded with zeros to size bytes
func gifBytes(width, height uint16, size int) []byte {
	buf := []byte("GIF89a")
	buf = binary.LittleEndian.AppendUint16(buf, width)
	buf = binary.LittleEndian.AppendUint16(buf, height)
	return pad(buf, size)
}

func pad(buf []byte, size int) []byte {
	if len(buf) < size {
		buf = append(buf, make([]byte, size-len(buf))...)
	}
	return buf
}

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", name, err)
	}
	return path
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

const kib = 1024
