// Package placer implements the two placement strategies that drive a
// placement.GatesGrid toward lower total HPWL cost by repeated Mutate/
// UndoMutate proposals: RandomDescent, a strict greedy hill-climber, and
// SimulatedAnnealing, which also accepts cost-increasing moves early on
// under a quadratically cooling temperature schedule.
//
// Both satisfy the Placer interface: one Step call proposes exactly one
// mutation and resolves it (accept or undo) before returning, so a
// caller can interleave stepping with progress logging or an iteration
// cap of its own without either placer managing its own event loop.
package placer
