package pcg

import "math"

// Gaussian returns a normally distributed float64 with the given mean and
// standard deviation, using the polar (Marsaglia) form of the Box-Muller
// transform: draw points uniformly in [-1,1)², reject those outside the
// unit disk, then scale. Two uniform draws are consumed per accepted pair;
// the companion normal value is discarded so the output sequence matches
// the straightforward formulation draw for draw.
func (g *Gen) Gaussian(mean, stddev float64) float64 {
	for {
		u := 2*g.Float64() - 1
		v := 2*g.Float64() - 1
		s := u*u + v*v
		if s >= 1 || s == 0 {
			continue
		}
		return mean + stddev*u*math.Sqrt(-2*math.Log(s)/s)
	}
}
