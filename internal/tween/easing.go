package tween

import (
	"fmt"

	"github.com/gen2brain/raylib-go/easings"
)

// Curve selects an easing function. The zero value is Linear.
type Curve int

const (
	Linear Curve = iota
	// QuadraticInOut accelerates over the first half and decelerates over the second.
	QuadraticInOut
)

var curveNames = map[Curve]string{
	Linear:         "linear",
	QuadraticInOut: "quadratic-in-out",
}

// Apply maps progress t to eased progress. t is clamped to [0, 1] first, so Apply(0) == 0 and Apply(1) == 1.
func (c Curve) Apply(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case QuadraticInOut:
		return easings.QuadInOut(t, 0, 1, 1)
	default:
		return easings.LinearNone(t, 0, 1, 1)
	}
}

func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// ParseCurve returns the curve named name ("linear", "quadratic-in-out").
func ParseCurve(name string) (Curve, error) {
	for c, n := range curveNames {
		if n == name {
			return c, nil
		}
	}
	return Linear, fmt.Errorf("unknown easing curve %q", name)
}

// MarshalText implements encoding.TextMarshaler so curves read naturally in YAML presets.
func (c Curve) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(b []byte) error {
	parsed, err := ParseCurve(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
