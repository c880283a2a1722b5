package systems

import (
	"image"
	"image/color"
	stdmath "math"
	"testing"

	"github.com/automoto/scrollscene/assets"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/fonts"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/automoto/scrollscene/systems/factory"
	"github.com/automoto/scrollscene/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testColor = color.RGBA{R: 255, G: 237, B: 237, A: 255}

func newTestScene(t *testing.T, width, height float64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	if err := factory.CreateScene(e, assets.DefaultLayout(), gamemath.DefaultRamp, testColor, width, height, 1); err != nil {
		t.Fatalf("CreateScene() error = %v", err)
	}
	return e
}

func setDelta(e *ecs.ECS, dt float64) {
	components.Clock.Get(MustStory(e)).Delta = dt
}

func spinCounts(e *ecs.ECS) []int {
	var out []int
	for _, s := range Sections(e) {
		out = append(out, len(components.Spin.Get(s).Active))
	}
	return out
}

func closeTo(a, b float64) bool {
	return stdmath.Abs(a-b) < 1e-6
}

func TestScrollFiresOneSpinPerTransition(t *testing.T) {
	e := newTestScene(t, 1280, 800)

	for _, off := range []float64{800, 850, 1650} {
		ScrollTo(e, off)
	}

	got := spinCounts(e)
	want := []int{0, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spins per section = %v, want %v", got, want)
		}
	}
	if cur := components.Scroll.Get(MustStory(e)).Tracker.Current; cur != 2 {
		t.Fatalf("current section = %d, want 2", cur)
	}
}

func TestRepeatedScrollWithinSectionDoesNotRespin(t *testing.T) {
	e := newTestScene(t, 1280, 800)

	for _, off := range []float64{700, 750, 810, 900, 1100} {
		ScrollTo(e, off)
	}
	if got := spinCounts(e); got[1] != 1 {
		t.Fatalf("spins on section 1 = %d, want 1", got[1])
	}
}

func TestScrollClampsPastLastSection(t *testing.T) {
	e := newTestScene(t, 1280, 800)

	ScrollTo(e, 99999)
	scroll := components.Scroll.Get(MustStory(e))
	if scroll.OffsetY != 1600 {
		t.Fatalf("OffsetY = %v, want 1600", scroll.OffsetY)
	}
	if scroll.Tracker.Current != 2 {
		t.Fatalf("current section = %d, want 2", scroll.Tracker.Current)
	}

	ScrollTo(e, -50)
	if scroll.OffsetY != 0 {
		t.Fatalf("OffsetY = %v, want 0", scroll.OffsetY)
	}
	if got := spinCounts(e); got[0] != 1 {
		t.Fatalf("spins on section 0 after returning = %d, want 1", got[0])
	}
}

func TestSpinCompletesWithFullDelta(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	ScrollTo(e, 800)

	section := components.Section.Get(Sections(e)[1])
	setDelta(e, 0.1)
	for i := 0; i < 20; i++ {
		UpdateSpins(e)
	}

	want := gamemath.V3(cfg.Section.SpinX, cfg.Section.SpinY, cfg.Section.SpinZ)
	if !closeTo(section.Rotation.X, want.X) || !closeTo(section.Rotation.Y, want.Y) || !closeTo(section.Rotation.Z, want.Z) {
		t.Fatalf("rotation = %+v, want %+v", section.Rotation, want)
	}
	if n := len(components.Spin.Get(Sections(e)[1]).Active); n != 0 {
		t.Fatalf("active spins after completion = %d, want 0", n)
	}
}

func TestOverlappingSpinsAddUp(t *testing.T) {
	e := newTestScene(t, 1280, 800)

	ScrollTo(e, 800)
	setDelta(e, 0.5)
	UpdateSpins(e)
	ScrollTo(e, 0)
	ScrollTo(e, 800)
	if got := spinCounts(e); got[1] != 2 {
		t.Fatalf("spins on section 1 = %d, want 2", got[1])
	}

	for i := 0; i < 10; i++ {
		UpdateSpins(e)
	}
	rot := components.Section.Get(Sections(e)[1]).Rotation
	if !closeTo(rot.X, 2*cfg.Section.SpinX) {
		t.Fatalf("rotation.X = %v, want %v", rot.X, 2*cfg.Section.SpinX)
	}
}

func TestUpdateFrameMovesCameraWithScroll(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	ScrollTo(e, 800)
	setDelta(e, 1.0/60)

	UpdateFrame(e)

	cameraEntry, _ := tags.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)
	if want := -cfg.Section.Spacing; !closeTo(camera.Y, want) {
		t.Fatalf("camera Y = %v, want %v", camera.Y, want)
	}
}

func TestUpdateFrameIdleRotation(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	dt := 1.0 / 60
	setDelta(e, dt)

	const frames = 120
	for i := 0; i < frames; i++ {
		UpdateFrame(e)
	}

	for _, s := range Sections(e) {
		rot := components.Section.Get(s).Rotation
		if !closeTo(rot.X, frames*dt*cfg.Section.IdleRateX) || !closeTo(rot.Y, frames*dt*cfg.Section.IdleRateY) {
			t.Fatalf("section %d rotation = %+v, want X=%v Y=%v", components.Section.Get(s).Index, rot,
				frames*dt*cfg.Section.IdleRateX, frames*dt*cfg.Section.IdleRateY)
		}
	}
}

func TestParallaxFollowsPointer(t *testing.T) {
	e := newTestScene(t, 1000, 800)
	SetPointer(e, 1000, 0) // top right corner
	setDelta(e, 1.0/60)

	for i := 0; i < 600; i++ {
		UpdateFrame(e)
	}

	cameraEntry, _ := tags.Camera.First(e.World)
	rig := components.CameraRig.Get(cameraEntry).Position
	if !closeTo(rig.X, 0.5) || !closeTo(rig.Y, 0.5) {
		t.Fatalf("rig = %+v, want (0.5, 0.5)", rig)
	}
}

func TestSetMaterialColorUpdatesBothMaterials(t *testing.T) {
	saved := cfg.Material.Color
	defer func() { cfg.Material.Color = saved }()

	e := newTestScene(t, 1280, 800)
	want := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}
	SetMaterialColor(e, want)

	solid, _ := tags.SolidMaterial.First(e.World)
	particle, _ := tags.ParticleMaterial.First(e.World)
	if got := components.Material.Get(solid).Color; got != want {
		t.Fatalf("solid material color = %v, want %v", got, want)
	}
	if got := components.Material.Get(particle).Color; got != want {
		t.Fatalf("particle material color = %v, want %v", got, want)
	}
	if cfg.Material.Color != "#123456" {
		t.Fatalf("config color = %q, want %q", cfg.Material.Color, "#123456")
	}
	if got := MaterialColor(e); got != want {
		t.Fatalf("MaterialColor() = %v, want %v", got, want)
	}
}

func TestResizeUpdatesAspectAndClampsScroll(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	ScrollTo(e, 1600)

	ResizeViewport(e, 800, 400, 2)

	cameraEntry, _ := tags.Camera.First(e.World)
	if got := components.Camera.Get(cameraEntry).Aspect; !closeTo(got, 2) {
		t.Fatalf("aspect = %v, want 2", got)
	}
	scroll := components.Scroll.Get(MustStory(e))
	if scroll.OffsetY != 800 {
		t.Fatalf("OffsetY = %v, want 800", scroll.OffsetY)
	}
	if got := spinCounts(e); got[2] != 1 {
		t.Fatalf("spins on section 2 = %d, want 1 (resize must not respin)", got[2])
	}
}

func TestResizeWithoutClampKeepsSectionInSync(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	ScrollTo(e, 800)

	ResizeViewport(e, 1280, 1700, 1)

	scroll := components.Scroll.Get(MustStory(e))
	if scroll.OffsetY != 1700 {
		t.Fatalf("OffsetY = %v, want 1700 (same place on the page)", scroll.OffsetY)
	}
	if want := motion.SectionIndex(scroll.OffsetY, 1700); scroll.Tracker.Current != want {
		t.Fatalf("current section = %d, want %d", scroll.Tracker.Current, want)
	}

	ScrollTo(e, scroll.OffsetY+1)
	got := spinCounts(e)
	want := []int{0, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spins per section after scrolling down = %v, want %v", got, want)
		}
	}
}

func TestResizeKeepsCurrentSectionDerivedFromOffset(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	ScrollTo(e, 1250)

	for _, h := range []float64{1700, 300, 950, 2400, 640} {
		ResizeViewport(e, 1280, h, 1)
		scroll := components.Scroll.Get(MustStory(e))
		want := motion.ClampSection(motion.SectionIndex(scroll.OffsetY, h), scroll.Tracker.Count)
		if scroll.Tracker.Current != want {
			t.Fatalf("height %v: current section = %d, want %d (offset %v)", h, scroll.Tracker.Current, want, scroll.OffsetY)
		}
	}
}

func TestResizeReloadsFontsOnPixelRatioChange(t *testing.T) {
	if err := fonts.LoadDefaults(1); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	before := fonts.Caption.Get().Metrics().Height

	e := newTestScene(t, 1280, 800)
	ResizeViewport(e, 1280, 800, 2)

	after := fonts.Caption.Get().Metrics().Height
	if after <= before {
		t.Fatalf("caption line height = %v after ratio 2, want more than %v", after, before)
	}
}

func TestProjectionUsesCameraAspect(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	ResizeViewport(e, 1600, 800, 1)

	proj, ok := projectionFor(e, imageRect(1280, 800))
	if !ok {
		t.Fatal("projectionFor() found no camera")
	}
	if got := proj.Aspect(); !closeTo(got, 2) {
		t.Fatalf("projection aspect = %v, want the camera aspect 2", got)
	}
}

func TestPixelRatioCapped(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 1},
		{1, 1},
		{1.5, 1.5},
		{3, 2},
	}
	for _, c := range cases {
		if got := PixelRatio(c.in); got != c.want {
			t.Fatalf("PixelRatio(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionPageDown] = true

	state := GetAction(input, cfg.ActionPageDown)
	if !state.Pressed || !state.JustPressed || state.JustReleased {
		t.Fatalf("GetAction() = %+v, want pressed and just pressed", state)
	}

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	state = GetAction(input, cfg.ActionPageDown)
	if state.Pressed || state.JustPressed || !state.JustReleased {
		t.Fatalf("GetAction() = %+v, want just released", state)
	}
}

func TestCaptionPositionOppositeObject(t *testing.T) {
	vp := &components.ViewportData{Width: 1000, Height: 800, PixelRatio: 1}

	x, y := CaptionPosition(0, 2, 100, 20, vp, 0)
	if x != 100 || y != 410 {
		t.Fatalf("CaptionPosition(right object) = (%v, %v), want (100, 410)", x, y)
	}

	x, y = CaptionPosition(1, -2, 100, 20, vp, 800)
	if x != 800 || y != 410 {
		t.Fatalf("CaptionPosition(left object) = (%v, %v), want (800, 410)", x, y)
	}
}

func TestCollectSectionsCullsBackFaces(t *testing.T) {
	e := newTestScene(t, 1280, 800)
	proj, ok := projectionFor(e, imageRect(1280, 800))
	if !ok {
		t.Fatal("projectionFor() found no camera")
	}

	total := 0
	for _, s := range Sections(e) {
		total += len(components.Section.Get(s).Mesh.Faces)
	}

	r := &sceneRenderer{}
	r.collectSections(e, proj)
	if len(r.tris) == 0 || len(r.tris) >= total {
		t.Fatalf("collected %d of %d faces, want some culled and some kept", len(r.tris), total)
	}
}

func imageRect(w, h int) image.Rectangle {
	return image.Rect(0, 0, w, h)
}
