package lmm

import (
	"fmt"
	"hash/fnv"

	"github.com/lmm-sim/lmm-sim/lmm/brownian"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical market data MUST
// produce bit-for-bit identical paths.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// pathName returns the subsystem name for path index i, used to derive that
// path's seed.
func pathName(i int) string {
	return fmt.Sprintf("path_%d", i)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated normal sources per
// simulated path. Each path's seed is masterSeed XOR fnv1a64(pathName), so
// draws consumed by one path never shift another path's sequence.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine;
// hand each worker its own source via ForPath before fanning out.
type PartitionedRNG struct {
	key   SimulationKey
	paths map[string]*brownian.GaussianSource
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:   key,
		paths: make(map[string]*brownian.GaussianSource),
	}
}

// ForPath returns a deterministically-seeded normal source for path i.
// The same path index always returns the same source instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForPath(i int) *brownian.GaussianSource {
	name := pathName(i)
	if src, ok := p.paths[name]; ok {
		return src
	}
	derivedSeed := int64(p.key) ^ fnv1a64(name)
	src := brownian.NewGaussianSource(uint64(derivedSeed))
	p.paths[name] = src
	return src
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
