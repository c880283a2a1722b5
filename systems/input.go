package systems

import (
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and wheel into the InputComponent.
// Must run BEFORE UpdateScroll in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := components.Input.Get(MustStory(ecs))

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	_, input.WheelY = ebiten.Wheel()
}

// UpdatePointer samples the cursor and stores it normalized to the viewport.
func UpdatePointer(ecs *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	SetPointer(ecs, float64(x), float64(y))
}

// SetPointer records a pointer move to (x, y) in render pixels.
func SetPointer(ecs *ecs.ECS, x, y float64) {
	story := MustStory(ecs)
	vp := components.Viewport.Get(story)
	pointer := components.Pointer.Get(story)

	// Cursor positions arrive in render pixels; the viewport is logical.
	ratio := vp.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	pointer.Vec2 = motion.NormalizePointer(x/ratio, y/ratio, vp.Width, vp.Height)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
