// Package contour post-processes contour hierarchies produced by a
// border-tracing collaborator: ranking contours by perimeter or by
// direct-child count, and filtering out thin or degenerate artifacts
// based on the aspect ratio of their minimum-area bounding rectangle.
//
// The package does not trace contours and does not compute
// minimum-area rectangles itself; both are consumed from external
// primitives (see [MinAreaRectFunc]). It also does no rendering.
//
// # Hierarchies
//
// A contour hierarchy is an ordered []Contour slice. Parent links
// between contours are plain indices into that slice, so positions
// are the identity: links are meaningful only within the snapshot
// they were produced with and do not survive reordering or removal.
// Out-of-range parent indices are tolerated and silently ignored.
//
// # Ownership
//
// RankByPerimeter and RankByChildCount consume their input slice:
// contour values are moved into the result and the original slice
// must not be reused. FilterByAspectRatio compacts the slice in place
// and returns the shortened result, following the slices.DeleteFunc
// convention. No operation mutates contour geometry.
//
// # Determinism
//
// Both rankers use an unstable sort; the relative order of contours
// with equal perimeter or equal child count is unspecified. Everything
// else is deterministic. The functions share no state and are safe to
// call concurrently on independent hierarchies.
package contour
