// Package lmm samples forward interest-rate curves under a LIBOR Market
// Model driven by correlated Brownian motion.
//
// # Reading Guide
//
// Start with these files to understand the simulation core:
//   - model.go: the forward-curve model and the Advance algorithm (futures
//     quote dynamics plus futures-to-forward convexity correction)
//   - config.go: the YAML market spec (reset times, futures quotes, caplet
//     vols, correlation) and its validation
//   - rng.go: seed partitioning so each simulated path gets an isolated,
//     reproducible randomness source
//
// # Architecture
//
// The lmm package holds the model; collaborators live in sub-packages:
//   - lmm/brownian: correlated Brownian motion driver and normal sources
//   - lmm/pwflat: piecewise-flat forward curve (discount factors, zero rates)
//
// The model consumes its driver through the Driver interface, so tests can
// force realized Brownian values with a stub.
package lmm
