// Package view provides read-only accessors over a finished placement and
// routing session, the kind a visualization/HUD layer or a CLI progress
// report would consult: "what gate sits at this pixel", "where did this
// gate land", "what's the bounding box of this selection". None of these
// mutate the GatesGrid or router.Session they read from, mirroring the
// teacher's own non-mutating view convention (core.UnweightedView,
// core.InducedSubgraph): build a small derived answer from borrowed state,
// never hand back a handle that lets the caller mutate the source.
package view
