package tour

import (
	"fmt"

	"earthquake-explorer/internal/geom"
	"github.com/chewxy/math32"
)

// Arrow is one animated cone. Opacity is copied from the set-wide highlight every tick.
type Arrow struct {
	Position geom.Vec3
	Rotation geom.Vec3 // Euler XYZ, radians
	Opacity  float32
}

// Arrow counts.
const (
	CoreArrowCount       = 8
	ConvectionArrowCount = 10
)

// Core arrow motion. Speeds are units per second; 1.2 u/s is 0.02 units per frame at 60 fps.
const (
	CoreArrowSpeed    = 1.2
	CoreRestartOffset = 6.5
	CoreResetDistance = 9.5
	coreRingCount     = 2
)

// coreArrow describes one heat arrow: where it starts, the axis it travels along, and its fixed orientation.
// Arrows in the same ring travel in lockstep and restart together.
type coreArrow struct {
	start    geom.Vec3
	dir      geom.Vec3
	rotation geom.Vec3
	ring     int
}

var (
	rotUp    = geom.V3(0, math32.Pi/4, 0)
	rotRight = geom.V3(math32.Pi/4, 0, 3*math32.Pi/2)
	rotDown  = geom.V3(0, math32.Pi/4, math32.Pi)
	rotLeft  = geom.V3(math32.Pi/4, 0, math32.Pi/2)

	dirUp    = geom.V3(0, 1, 0)
	dirRight = geom.V3(1, 0, 0)
	dirDown  = geom.V3(0, -1, 0)
	dirLeft  = geom.V3(-1, 0, 0)
)

var coreArrows = [CoreArrowCount]coreArrow{
	{start: dirUp.Scale(6.5), dir: dirUp, rotation: rotUp, ring: 0},
	{start: dirUp.Scale(8), dir: dirUp, rotation: rotUp, ring: 1},
	{start: dirRight.Scale(6.5), dir: dirRight, rotation: rotRight, ring: 0},
	{start: dirRight.Scale(8), dir: dirRight, rotation: rotRight, ring: 1},
	{start: dirDown.Scale(6.5), dir: dirDown, rotation: rotDown, ring: 0},
	{start: dirDown.Scale(8), dir: dirDown, rotation: rotDown, ring: 1},
	{start: dirLeft.Scale(6.5), dir: dirLeft, rotation: rotLeft, ring: 0},
	{start: dirLeft.Scale(8), dir: dirLeft, rotation: rotLeft, ring: 1},
}

// CoreArrowStart returns the start position of core arrow i.
func CoreArrowStart(i int) geom.Vec3 {
	return coreArrows[i].start
}

// CoreArrowDirection returns the unit axis core arrow i travels along.
func CoreArrowDirection(i int) geom.Vec3 {
	return coreArrows[i].dir
}

// Tier is the colour group of a convection arrow, ordered from the core outward through the loop.
type Tier int

const (
	TierRed Tier = iota
	TierOrange
	TierYellow
	TierLightBlue
	TierBlue
)

var tierNames = map[Tier]string{
	TierRed:       "red",
	TierOrange:    "orange",
	TierYellow:    "yellow",
	TierLightBlue: "light-blue",
	TierBlue:      "blue",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Convection loop thresholds. The red tier cycles on its own; the orange tier drives the shared loop.
const (
	RedResetHeight  = 9.0
	LoopResetHeight = 11.5
	loopLeaderIndex = 2 // first orange arrow
)

// convectionArrow is one arrow of the convection loop: velocity in units per second and a fixed roll (Z rotation).
type convectionArrow struct {
	tier     Tier
	start    geom.Vec3
	velocity geom.Vec3
	roll     float32
}

var convectionArrows = [ConvectionArrowCount]convectionArrow{
	{tier: TierRed, start: geom.V3(1, 6.5, 0), velocity: geom.V3(0, 1.2, 0)},
	{tier: TierRed, start: geom.V3(-1, 6.5, 0), velocity: geom.V3(0, 1.2, 0)},
	{tier: TierOrange, start: geom.V3(-1, 9, 0), velocity: geom.V3(-0.6, 1.2, 0), roll: math32.Pi / 6},
	{tier: TierOrange, start: geom.V3(1, 9, 0), velocity: geom.V3(0.6, 1.2, 0), roll: 11 * math32.Pi / 6},
	{tier: TierYellow, start: geom.V3(-2.5, 12.5, 0), velocity: geom.V3(-1.2, -0.3, 0), roll: 4 * math32.Pi / 6},
	{tier: TierYellow, start: geom.V3(2.5, 12.5, 0), velocity: geom.V3(1.2, -0.3, 0), roll: 8 * math32.Pi / 6},
	{tier: TierLightBlue, start: geom.V3(-6, 10.5, 0), velocity: geom.V3(0, -1.2, 0), roll: math32.Pi},
	{tier: TierLightBlue, start: geom.V3(6, 10.5, 0), velocity: geom.V3(0, -1.2, 0), roll: math32.Pi},
	{tier: TierBlue, start: geom.V3(-5, 5.5, 0), velocity: geom.V3(1.2, 0, 0), roll: 3 * math32.Pi / 2},
	{tier: TierBlue, start: geom.V3(5, 5.5, 0), velocity: geom.V3(-1.2, 0, 0), roll: math32.Pi / 2},
}

// ConvectionArrowTier returns the colour tier of convection arrow i.
func ConvectionArrowTier(i int) Tier {
	return convectionArrows[i].tier
}

// ConvectionArrowStart returns the loop start position of convection arrow i.
func ConvectionArrowStart(i int) geom.Vec3 {
	return convectionArrows[i].start
}

func initialCoreArrows() [CoreArrowCount]Arrow {
	var out [CoreArrowCount]Arrow
	for i, def := range coreArrows {
		out[i] = Arrow{Position: def.start, Rotation: def.rotation}
	}
	return out
}

func initialConvectionArrows() [ConvectionArrowCount]Arrow {
	var out [ConvectionArrowCount]Arrow
	for i, def := range convectionArrows {
		out[i] = Arrow{Position: def.start}
	}
	return out
}

// stepCoreArrows advances every core arrow by step units and restarts a ring once any
// of its arrows has travelled past CoreResetDistance.
func stepCoreArrows(arrows [CoreArrowCount]Arrow, step, opacity float32) [CoreArrowCount]Arrow {
	var ringDone [coreRingCount]bool
	for i, def := range coreArrows {
		a := arrows[i]
		a.Position = a.Position.Add(def.dir.Scale(step))
		a.Opacity = opacity
		arrows[i] = a
		if a.Position.Dot(def.dir) > CoreResetDistance {
			ringDone[def.ring] = true
		}
	}
	for i, def := range coreArrows {
		if ringDone[def.ring] {
			arrows[i].Position = def.dir.Scale(CoreRestartOffset)
		}
	}
	return arrows
}

// stepConvectionArrows moves the loop by dt seconds. Red restarts on its own; when the
// leading orange arrow passes LoopResetHeight every arrow snaps back to its start.
func stepConvectionArrows(arrows [ConvectionArrowCount]Arrow, dt, opacity float32) [ConvectionArrowCount]Arrow {
	for i, def := range convectionArrows {
		a := arrows[i]
		a.Position = a.Position.Add(def.velocity.Scale(dt))
		a.Rotation = geom.V3(0, 0, def.roll)
		a.Opacity = opacity
		arrows[i] = a
	}
	for i, def := range convectionArrows {
		if def.tier == TierRed && arrows[i].Position.Y > RedResetHeight {
			arrows[i].Position = def.start
		}
	}
	if arrows[loopLeaderIndex].Position.Y > LoopResetHeight {
		for i, def := range convectionArrows {
			arrows[i].Position = def.start
		}
	}
	return arrows
}
