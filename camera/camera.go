// Package camera provides an orbit camera for the 3D geometry view.
package camera

import "math"

// Camera orbits a target point at a given distance. Yaw and pitch are in
// radians; pitch is clamped away from the poles so the up vector never
// degenerates.
type Camera struct {
	// Target is the orbit center in world coordinates
	TargetX, TargetY, TargetZ float64

	// Spherical position around the target
	Yaw      float64
	Pitch    float64
	Distance float64

	// Distance constraints
	MinDistance, MaxDistance float64
}

// maxPitch keeps the camera off the poles.
const maxPitch = math.Pi/2 - 0.05

// New creates a camera orbiting the origin at the given distance.
func New(distance float64) *Camera {
	return &Camera{
		Yaw:         math.Pi / 4,
		Pitch:       math.Pi / 6,
		Distance:    distance,
		MinDistance: distance * 0.2,
		MaxDistance: distance * 8,
	}
}

// Position returns the camera's world position.
func (c *Camera) Position() (x, y, z float64) {
	cp := math.Cos(c.Pitch)
	x = c.TargetX + c.Distance*cp*math.Cos(c.Yaw)
	y = c.TargetY + c.Distance*math.Sin(c.Pitch)
	z = c.TargetZ + c.Distance*cp*math.Sin(c.Yaw)
	return x, y, z
}

// Orbit rotates the camera around the target by the given deltas,
// clamping pitch away from the poles.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Dolly moves the camera toward or away from the target. factor > 1
// moves out, < 1 moves in; the distance is clamped to the configured
// range.
func (c *Camera) Dolly(factor float64) {
	c.Distance *= factor
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
