// Package rng centralizes deterministic random generation for the
// placement and routing engine.
//
// Goals:
//   - Determinism: the same seed produces the same placement/annealing
//     trajectory on every run, on every platform.
//   - Encapsulation: a single factory and a single derivation scheme; no
//     package ever reaches for the global math/rand source.
//   - Independence: the grid (construction and mutation share one stream)
//     and annealing get separate streams so that, e.g., adding an extra
//     annealing step does not perturb the initial placement.
//
// Concurrency: *rand.Rand is not goroutine-safe. The engine is
// single-threaded per run (see the router/placer concurrency notes), so a
// stream is never shared across goroutines.
package rng
