package contour

import (
	"fmt"

	"github.com/contourlab/contourdbg/geom"
)

// BorderType classifies a traced border.
type BorderType int

const (
	// Outer marks a border enclosing a foreground region.
	Outer BorderType = iota
	// Hole marks a border enclosing background nested within
	// foreground.
	Hole
)

func (b BorderType) String() string {
	switch b {
	case Outer:
		return "outer"
	case Hole:
		return "hole"
	default:
		return fmt.Sprintf("BorderType(%d)", int(b))
	}
}

// NoParent marks a contour without an enclosing parent.
const NoParent = -1

// Contour is a closed polygonal boundary of a connected region, as
// produced by a border-tracing collaborator.
//
// Points form an implicitly closed polygon: the last point connects
// back to the first. Parent is the index of the enclosing contour
// within the owning hierarchy slice, or negative (NoParent) for a
// top-level contour.
type Contour[T geom.Coord] struct {
	Points     []geom.Point[T]
	BorderType BorderType
	Parent     int
}
