package camera

import (
	"math"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New(5)
	if c.Distance != 5 {
		t.Errorf("distance = %v, want 5", c.Distance)
	}
	if c.MinDistance != 1 || c.MaxDistance != 40 {
		t.Errorf("distance range = %v..%v, want 1..40", c.MinDistance, c.MaxDistance)
	}
}

func TestPositionOnSphere(t *testing.T) {
	c := New(3)
	for _, d := range []struct{ yaw, pitch float64 }{
		{0, 0}, {math.Pi / 3, 0.4}, {-2.2, -0.9},
	} {
		c.Yaw, c.Pitch = d.yaw, d.pitch
		x, y, z := c.Position()
		r := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(r-c.Distance) > 1e-9 {
			t.Errorf("yaw=%v pitch=%v position radius = %v, want %v", d.yaw, d.pitch, r, c.Distance)
		}
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := New(3)
	c.Orbit(0, 10)
	if c.Pitch > math.Pi/2 {
		t.Errorf("pitch = %v, not clamped below the pole", c.Pitch)
	}
	c.Orbit(0, -20)
	if c.Pitch < -math.Pi/2 {
		t.Errorf("pitch = %v, not clamped above the pole", c.Pitch)
	}
}

func TestDollyClampsDistance(t *testing.T) {
	c := New(5)
	c.Dolly(0.001)
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %v, want min %v", c.Distance, c.MinDistance)
	}
	c.Dolly(1e6)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %v, want max %v", c.Distance, c.MaxDistance)
	}
}
