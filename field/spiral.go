package field

import "math"

// GoldenSpiral generates points on a Fermat spiral with golden-angle
// spacing. Point i sits at radius scale·√i, modulated by the
// consciousness level, with consecutive angular deltas of 2π/φ². With
// consciousness 0 the radii are exactly scale·√i.
func GoldenSpiral(points int, scale, consciousness float64) [][2]float64 {
	if points <= 0 {
		return nil
	}
	out := make([][2]float64, points)
	delta := 2 * math.Pi / (phi * phi)
	for i := 0; i < points; i++ {
		theta := float64(i) * delta
		r := scale * math.Sqrt(float64(i)) * (1 + consciousness*0.2*math.Sin(float64(i)*phi))
		out[i] = [2]float64{r * math.Cos(theta), r * math.Sin(theta)}
	}
	return out
}
