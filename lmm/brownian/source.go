package brownian

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSource yields independent standard normal draws. The driver pulls one
// draw per dimension per time step, so two sources seeded identically make
// two drivers trace identical paths.
type NormalSource interface {
	Normal() float64
}

// GaussianSource is the default NormalSource, a seeded N(0,1) sampler.
type GaussianSource struct {
	dist distuv.Normal
}

// NewGaussianSource creates a GaussianSource from a seed. The same seed
// always produces the same draw sequence.
func NewGaussianSource(seed uint64) *GaussianSource {
	return &GaussianSource{
		dist: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)},
	}
}

// Normal implements NormalSource.
func (g *GaussianSource) Normal() float64 {
	return g.dist.Rand()
}
