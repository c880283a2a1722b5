package systems

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveCaptureWritesWebP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(1, 1, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})

	dir := filepath.Join(t.TempDir(), "captures")
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	path, err := SaveCapture(img, dir, at)
	if err != nil {
		t.Fatalf("SaveCapture() error = %v", err)
	}
	if want := filepath.Join(dir, "frame-20261018-120000.000.webp"); path != want {
		t.Fatalf("SaveCapture() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Fatalf("capture is not a RIFF/WEBP file: % x", data[:min(len(data), 12)])
	}
}
