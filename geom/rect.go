package geom

import "math"

// RotatedRect holds the four ordered vertices of a minimum-area
// (arbitrary-orientation) rectangle enclosing a point set.
//
// Values of this type are produced by an external geometry primitive
// (for example an OpenCV binding's MinAreaRect); this package only
// consumes them.
type RotatedRect[T Coord] [4]Point[T]

// Box is an axis-aligned bounding box with non-negative coordinates
// and dimensions, suitable for indexing into image pixel grids.
type Box struct {
	X      uint32 `json:"x"`      // Left edge
	Y      uint32 `json:"y"`      // Top edge
	Width  uint32 `json:"width"`  // Horizontal extent
	Height uint32 `json:"height"` // Vertical extent
}

// AxisAlignedBounds returns the smallest axis-aligned box enclosing
// the rectangle's four vertices.
//
// The result is invariant under vertex order. Each extreme coordinate
// is truncated toward zero and clamped to 0 if negative before the
// unsigned conversion, and width/height are computed with a saturating
// subtraction, so geometry extending into negative coordinates is
// silently cut off at the axes. This lossy projection is part of the
// contract, not an error condition. NaN vertices yield unspecified
// (but non-crashing) output.
func (r RotatedRect[T]) AxisAlignedBounds() Box {
	minX, maxX := r[0].X, r[0].X
	minY, maxY := r[0].Y, r[0].Y

	// Pairwise comparison rather than sorting: Coord is only
	// partially ordered for floating-point types.
	for _, p := range r[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	x := clampToU32(float64(minX))
	y := clampToU32(float64(minY))

	return Box{
		X:      x,
		Y:      y,
		Width:  saturatingSub(clampToU32(float64(maxX)), x),
		Height: saturatingSub(clampToU32(float64(maxY)), y),
	}
}

// clampToU32 truncates v toward zero and clamps it into uint32 range.
func clampToU32(v float64) uint32 {
	v = math.Trunc(v)
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func saturatingSub(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}
