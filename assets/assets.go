package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"sort"

	"github.com/automoto/scrollscene/shared/gamemath"
	_ "github.com/ftrvxmtrx/tga"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:scenes all:textures
	assetFS embed.FS
)

const (
	StoryPath    = "scenes/story.tmx"
	GradientPath = "textures/gradients/3.tga"
)

// SectionSpec describes one section object as authored in the layout.
type SectionSpec struct {
	Index   int
	Shape   string  // "torus", "cone" or "sphere"
	OffsetX float64 // horizontal placement in world units
	Caption string
}

// LightSpec is the directional light of the layout.
type LightSpec struct {
	X, Y, Z   float64
	Intensity float64
}

// Layout is the parsed story scene.
type Layout struct {
	Sections []SectionSpec
	Light    *LightSpec // nil = use config.Light
}

// DefaultLayout is the built-in three-section page.
func DefaultLayout() *Layout {
	return &Layout{
		Sections: []SectionSpec{
			{Index: 0, Shape: "torus", OffsetX: 2, Caption: "My Portfolio"},
			{Index: 1, Shape: "cone", OffsetX: -2, Caption: "My projects"},
			{Index: 2, Shape: "sphere", OffsetX: 2, Caption: "Contact me"},
		},
	}
}

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

// LoadLayout parses a Tiled map with a "sections" object group and an
// optional "light" object group. Sections are ordered by their "index" property.
func LoadLayout(fsys fs.FS, path string) (*Layout, error) {
	storyMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	layout := &Layout{}
	for _, og := range storyMap.ObjectGroups {
		switch og.Name {
		case "sections":
			for _, o := range og.Objects {
				layout.Sections = append(layout.Sections, SectionSpec{
					Index:   o.Properties.GetInt("index"),
					Shape:   o.Properties.GetString("shape"),
					OffsetX: o.Properties.GetFloat("offsetX"),
					Caption: o.Properties.GetString("caption"),
				})
			}
		case "light":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			layout.Light = &LightSpec{
				X:         o.Properties.GetFloat("x"),
				Y:         o.Properties.GetFloat("y"),
				Z:         o.Properties.GetFloat("z"),
				Intensity: o.Properties.GetFloat("intensity"),
			}
		}
	}

	if len(layout.Sections) == 0 {
		return nil, fmt.Errorf("load TMX %s: no objects in the sections group", path)
	}

	sort.SliceStable(layout.Sections, func(i, j int) bool {
		return layout.Sections[i].Index < layout.Sections[j].Index
	})
	for i := range layout.Sections {
		layout.Sections[i].Index = i
	}
	return layout, nil
}

// LoadRamp decodes a gradient texture and returns the brightness of each pixel
// in its first row, left to right.
func LoadRamp(fsys fs.FS, path string) (gamemath.Ramp, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gradient: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gradient: decode %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("gradient: %s is empty", path)
	}
	ramp := make(gamemath.Ramp, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		g := color.GrayModel.Convert(img.At(x, b.Min.Y)).(color.Gray)
		ramp = append(ramp, float64(g.Y)/255)
	}
	return ramp, nil
}
