package components

import (
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/yohamta/donburi"
)

// SectionData is one section object: a mesh anchored at its page position
type SectionData struct {
	Index    int
	Shape    string
	Caption  string
	Position gamemath.Vec3
	Rotation gamemath.Vec3
	Mesh     *gamemath.Mesh
}

var Section = donburi.NewComponentType[SectionData]()

// SpinData holds the spins currently playing on a section
type SpinData struct {
	Active []*motion.Spin
}

var Spin = donburi.NewComponentType[SpinData]()
