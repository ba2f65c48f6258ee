package geom

import "github.com/chewxy/math32"

// Orbit limits. Pitch stays just short of the poles so the view basis never degenerates.
const (
	MaxPitch         = math32.Pi/2 - 0.01
	MinOrbitDistance = 2
	MaxOrbitDistance = 120
)

// Orbit rotates position around target by dYaw (around +Y) and dPitch (toward +Y), both in radians,
// then scales the distance to target by zoom (1 = unchanged). Pitch and distance are clamped.
// A position equal to target is returned unchanged.
func Orbit(position, target Vec3, dYaw, dPitch, zoom float32) Vec3 {
	offset := position.Sub(target)
	r := offset.Length()
	if r == 0 {
		return position
	}
	yaw := math32.Atan2(offset.X, offset.Z) + dYaw
	pitch := math32.Asin(clamp(offset.Y/r, -1, 1)) + dPitch
	pitch = clamp(pitch, -MaxPitch, MaxPitch)
	if zoom > 0 {
		r = clamp(r*zoom, MinOrbitDistance, MaxOrbitDistance)
	}
	cp := math32.Cos(pitch)
	return target.Add(Vec3{
		X: r * cp * math32.Sin(yaw),
		Y: r * math32.Sin(pitch),
		Z: r * cp * math32.Cos(yaw),
	})
}

// DampingFactor is the share of a pending orbit delta applied per 1/60 s frame.
const DampingFactor = 0.05

// settled is the pending delta below which the rest is applied at once so the camera comes to rest.
const settled = 1e-5

// Damp splits a pending orbit delta into the part to apply this frame and the part left for later, so a drag
// eases out over several frames. The split depends on dt only, so the camera glides the same at any frame rate,
// and the applied parts add up to pending.
func Damp(pending, dt float32) (apply, rest float32) {
	if dt <= 0 {
		return 0, pending
	}
	rest = pending * math32.Pow(1-DampingFactor, dt*60)
	if math32.Abs(rest) < settled {
		return pending, 0
	}
	return pending - rest, rest
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
