package systems

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// CaptureFrame writes the finished frame to cfg.Debug.CaptureDir when a
// capture was requested. It runs after everything else has been drawn.
func CaptureFrame(ecs *ecs.ECS, screen *ebiten.Image) {
	debug := components.Debug.Get(MustStory(ecs))
	if !debug.CapturePending {
		return
	}
	debug.CapturePending = false

	b := screen.Bounds()
	img := image.NewRGBA(b)
	screen.ReadPixels(img.Pix)

	path, err := SaveCapture(img, cfg.Debug.CaptureDir, time.Now())
	if err != nil {
		log.Printf("Warning: Could not save capture: %v", err)
		return
	}
	log.Printf("Saved capture %s", path)
}

// SaveCapture encodes img as lossless WebP into dir, named after t.
func SaveCapture(img image.Image, dir string, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create capture dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%s.webp", t.Format("20060102-150405.000")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create capture: %w", err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return "", fmt.Errorf("encode capture: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close capture: %w", err)
	}
	return path, nil
}
