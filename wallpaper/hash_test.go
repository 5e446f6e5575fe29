package wallpaper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func gradientPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: uint8((x + y) * 2), A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestCalculatePerceptualHash(t *testing.T) {
	testDir := t.TempDir()
	data := gradientPNG(t)

	first, err := CalculatePerceptualHash(writeTestFile(t, testDir, "a.jpg", data))
	if err != nil {
		t.Fatalf("CalculatePerceptualHash() error = %v", err)
	}
	second, err := CalculatePerceptualHash(writeTestFile(t, testDir, "b.jpg", data))
	if err != nil {
		t.Fatalf("CalculatePerceptualHash() error = %v", err)
	}

	distance, err := first.Distance(second)
	if err != nil {
		t.Fatalf("Distance() error = %v", err)
	}
	if distance != 0 {
		t.Errorf("Expected identical images to have distance 0, got %d", distance)
	}
}

func TestCalculatePerceptualHash_Errors(t *testing.T) {
	testDir := t.TempDir()

	if _, err := CalculatePerceptualHash(filepath.Join(testDir, "missing.jpg")); err == nil {
		t.Error("Expected error for missing file")
	}

	notImage := writeTestFile(t, testDir, "notes.jpg", []byte("definitely not an image"))
	if _, err := CalculatePerceptualHash(notImage); err == nil {
		t.Error("Expected error for non-image file")
	}
}

func TestFindSimilarImages(t *testing.T) {
	testDir := t.TempDir()
	data := gradientPNG(t)

	writeTestFile(t, testDir, "first.jpg", data)
	writeTestFile(t, testDir, "second.jpg", data)
	writeTestFile(t, testDir, "readme.txt", []byte("not an image at all, just some words"))
	// Header says JPEG but the body cannot be decoded
	writeTestFile(t, testDir, "broken.jpg", jpegBytes(1920, 1080, 2*kib))

	groups, err := FindSimilarImages(testDir, DefaultSimilarityThreshold, quietLogger())
	if err != nil {
		t.Fatalf("FindSimilarImages() error = %v", err)
	}

	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d: %v", len(groups), groups)
	}

	expected := []string{filepath.Join(testDir, "first.jpg"), filepath.Join(testDir, "second.jpg")}
	if len(groups[0].Files) != 2 || groups[0].Files[0] != expected[0] || groups[0].Files[1] != expected[1] {
		t.Errorf("Expected %v, got %v", expected, groups[0].Files)
	}
	if len(groups[0].Hash) != 16 {
		t.Errorf("Expected 16 hex digit hash, got %q", groups[0].Hash)
	}
}

func TestFindSimilarImages_NoDuplicates(t *testing.T) {
	testDir := t.TempDir()
	writeTestFile(t, testDir, "only.png", gradientPNG(t))

	groups, err := FindSimilarImages(testDir, DefaultSimilarityThreshold, quietLogger())
	if err != nil {
		t.Fatalf("FindSimilarImages() error = %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Expected no groups for a single image, got %v", groups)
	}
}

func TestFindSimilarImages_NonExistentDirectory(t *testing.T) {
	if _, err := FindSimilarImages("/path/to/nonexistent/directory", DefaultSimilarityThreshold, quietLogger()); err == nil {
		t.Error("FindSimilarImages() expected error for non-existent directory, got nil")
	}
}
