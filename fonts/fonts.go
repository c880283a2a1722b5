package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Caption FontName = "caption"
	Debug   FontName = "debug"
)

func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

var faces = map[FontName]font.Face{}

// LoadDefaults parses the bundled Go fonts. Caption size follows the render
// density so captions stay sharp on high-DPI screens.
func LoadDefaults(pixelRatio float64) error {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	if err := Load(Caption, gobold.TTF, 48*pixelRatio); err != nil {
		return err
	}
	return Load(Debug, goregular.TTF, 12*pixelRatio)
}

// Load parses ttf and registers a face of the given size under name.
func Load(name FontName, ttf []byte, size float64) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	faces[name] = truetype.NewFace(parsed, &truetype.Options{Size: size})
	return nil
}
