package contour

import (
	"math"

	"github.com/contourlab/contourdbg/geom"
)

// MinAreaRectFunc computes the minimum-area rectangle (any
// orientation) enclosing a point set, returning its four ordered
// vertices. Implementations come from an external geometry
// collaborator, such as an OpenCV binding.
type MinAreaRectFunc[T geom.Coord] func(points []geom.Point[T]) geom.RotatedRect[T]

// Rectangle sides with a squared length below this are treated as
// degenerate (near-zero-width) and their contours rejected.
const degenerateSideSq = 1e-6

// FilterByAspectRatio removes contours whose minimum-area rectangle
// is too elongated, compacting the slice in place and returning the
// shortened result. The relative order of survivors is preserved.
//
// A contour is kept only if all of the following hold, checked in
// order:
//  1. only is nil or matches the contour's border type;
//  2. the contour has at least 4 points (fewer cannot describe a
//     meaningful rectangle);
//  3. neither adjacent side of its minimum-area rectangle is
//     degenerate (squared length below 1e-6);
//  4. the rectangle's aspect ratio (long side / short side) is
//     strictly below maxAspectRatio; a contour sitting exactly on
//     the threshold is removed.
//
// This strips thin slivers such as scan-line noise and hairline
// artifacts while retaining compact blobs; maxAspectRatio tunes the
// sensitivity.
//
// Panics if maxAspectRatio is not a positive finite number. That is a
// programmer error, never a data-driven condition.
func FilterByAspectRatio[T geom.Coord](
	contours []Contour[T],
	maxAspectRatio float64,
	only *BorderType,
	minAreaRect MinAreaRectFunc[T],
) []Contour[T] {
	if math.IsNaN(maxAspectRatio) || math.IsInf(maxAspectRatio, 0) || maxAspectRatio <= 0 {
		panic("contour: maxAspectRatio must be a positive finite number")
	}

	kept := contours[:0]
	for _, c := range contours {
		if keep(c, maxAspectRatio, only, minAreaRect) {
			kept = append(kept, c)
		}
	}
	return kept
}

func keep[T geom.Coord](
	c Contour[T],
	maxAspectRatio float64,
	only *BorderType,
	minAreaRect MinAreaRectFunc[T],
) bool {
	if only != nil && c.BorderType != *only {
		return false
	}
	if len(c.Points) < 4 {
		return false
	}

	rect := minAreaRect(c.Points)
	side1 := sideLengthSq(rect[0], rect[1])
	side2 := sideLengthSq(rect[1], rect[2])
	if side1 < degenerateSideSq || side2 < degenerateSideSq {
		return false
	}

	ratio := math.Sqrt(max(side1, side2) / min(side1, side2))
	return ratio < maxAspectRatio
}

// sideLengthSq returns the squared Euclidean distance between two
// rectangle vertices.
func sideLengthSq[T geom.Coord](a, b geom.Point[T]) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return dx*dx + dy*dy
}
