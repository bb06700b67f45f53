// Package router implements the Lee-style, multi-layer maze router:
// given a frozen placement.GatesGrid, it routes every net as a tree
// built by successive target absorption (a partial route becomes a
// multi-source wavefront for whatever targets remain), with a global
// rip-up-and-reroute fallback when any single net's wavefront dead-ends.
//
// Grounded on the prototype's router.py (PriorityQueue-driven wavefront,
// predecessor-direction backtrace, global rip-up loop) and, for the
// priority-queue mechanics themselves, on the teacher's dijkstra package
// (container/heap min-heap ordered by cost with a sequence tie-break; a
// cell is enqueued at most once per wavefront). Unlike the prototype, neighbor enumeration here runs only when
// a dequeued cell is NOT absorbed this round — the prototype's fall-
// through after absorption re-commits a stale predecessor over the
// freshly-reset ROOT it had just written, which the specification this
// router implements deliberately does not carry forward.
package router
