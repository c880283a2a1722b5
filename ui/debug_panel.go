package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/scrollscene/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Channel is one component of an RGB color.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// ChannelStep is how far one +/- click moves a channel.
const ChannelStep = 16

// Swatches are the preset material colors offered by the panel.
var Swatches = []string{"#ffeded", "#ff7a7a", "#ffd36e", "#8fe3a7", "#7ab8ff", "#c49bff"}

// AdjustChannel moves one channel of c by delta, clamped to [0, 255].
func AdjustChannel(c color.RGBA, ch Channel, delta int) color.RGBA {
	clamp := func(v uint8) uint8 {
		n := int(v) + delta
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	switch ch {
	case Red:
		c.R = clamp(c.R)
	case Green:
		c.G = clamp(c.G)
	case Blue:
		c.B = clamp(c.B)
	}
	return c
}

// DebugPanel is the ebitenui control panel for the material color.
type DebugPanel struct {
	UI *ebitenui.UI

	// OnChange receives every color picked in the panel.
	OnChange func(color.RGBA)

	current    color.RGBA
	valueLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewDebugPanel builds the panel showing initial. Text is sized for the
// render pixel ratio.
func NewDebugPanel(initial color.RGBA, pixelRatio float64, onChange func(color.RGBA)) *DebugPanel {
	dp := &DebugPanel{
		OnChange: onChange,
		current:  initial,
	}
	dp.loadFonts(pixelRatio)
	dp.buildUI()
	return dp
}

// Color returns the color currently shown by the panel.
func (dp *DebugPanel) Color() color.RGBA {
	return dp.current
}

// SetColor picks c as if chosen in the panel.
func (dp *DebugPanel) SetColor(c color.RGBA) {
	c.A = 255
	dp.current = c
	dp.UpdateUI()
	if dp.OnChange != nil {
		dp.OnChange(c)
	}
}

func (dp *DebugPanel) loadFonts(pixelRatio float64) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	dp.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14 * pixelRatio,
	}
	dp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12 * pixelRatio,
	}
}

func (dp *DebugPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("materialColor", &dp.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)

	dp.valueLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.FormatHexColor(dp.current), &dp.normalFace, &widget.LabelColor{
			Idle: cfg.LightGray,
		}),
	)
	contentContainer.AddChild(dp.valueLabel)

	contentContainer.AddChild(dp.buildSwatches())
	for _, ch := range []Channel{Red, Green, Blue} {
		contentContainer.AddChild(dp.buildChannelRow(ch))
	}

	rootContainer.AddChild(contentContainer)

	dp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (dp *DebugPanel) buildSwatches() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	for _, hex := range Swatches {
		c, err := cfg.ParseHexColor(hex)
		if err != nil {
			continue
		}
		swatch := c // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(20, 20),
			),
			widget.ButtonOpts.Image(swatchImage(swatch)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				dp.SetColor(swatch)
			}),
		)
		row.AddChild(button)
	}
	return row
}

func (dp *DebugPanel) buildChannelRow(ch Channel) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	name := [...]string{Red: "R", Green: "G", Blue: "B"}[ch]
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &dp.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	for _, delta := range []int{-ChannelStep, ChannelStep} {
		step := delta // Capture for closure
		label := "+"
		if step < 0 {
			label = "-"
		}
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(28, 20),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(label, &dp.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				dp.SetColor(AdjustChannel(dp.current, ch, step))
			}),
		)
		row.AddChild(button)
	}
	return row
}

// UpdateUI refreshes the labels from the current color.
func (dp *DebugPanel) UpdateUI() {
	if dp.valueLabel != nil {
		dp.valueLabel.Label = cfg.FormatHexColor(dp.current)
	}
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func swatchImage(c color.RGBA) *widget.ButtonImage {
	hover := AdjustChannel(AdjustChannel(AdjustChannel(c, Red, -24), Green, -24), Blue, -24)
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(c),
		Hover:    image.NewNineSliceColor(hover),
		Pressed:  image.NewNineSliceColor(hover),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
