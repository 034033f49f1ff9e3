package main

import (
	"fmt"
	"html/template"
	"math/rand/v2"
)

// Particle is a decorative floating dot. X and Y are percentages of the
// viewport, Size is in pixels, Duration and Delay in seconds.
type Particle struct {
	ID       int
	X        float64
	Y        float64
	Size     float64
	Duration float64
	Delay    float64
}

// GenerateParticles draws n particles from r.
func GenerateParticles(r *rand.Rand, n int) []Particle {
	out := make([]Particle, n)
	for i := range out {
		out[i] = Particle{
			ID:       i,
			X:        r.Float64() * 100,
			Y:        r.Float64() * 100,
			Size:     r.Float64()*3 + 1,
			Duration: r.Float64()*20 + 10,
			Delay:    r.Float64() * 5,
		}
	}
	return out
}

func (pt Particle) Style() template.CSS {
	return template.CSS(fmt.Sprintf(
		"left: %.3f%%; top: %.3f%%; width: %.3fpx; height: %.3fpx; animation: float %.3fs ease-in-out %.3fs infinite alternate;",
		pt.X, pt.Y, pt.Size, pt.Size, pt.Duration, pt.Delay,
	))
}
