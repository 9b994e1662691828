// Package trace adapts external image collaborators (border tracing,
// minimum-area rectangles and connected-component labelling) to the
// contour, geom and regions types.
//
// The real implementation wraps OpenCV through gocv and is only
// compiled with the "gocv" build tag. Untagged builds get a stub whose
// operations fail with ErrUnavailable, so binaries still build and run
// on machines without OpenCV installed.
package trace

import (
	"errors"
	"image"

	"github.com/contourlab/contourdbg/contour"
	"github.com/contourlab/contourdbg/geom"
)

// ErrUnavailable is returned by the stub tracer compiled without the
// gocv build tag.
var ErrUnavailable = errors.New("trace: contour tracing requires building with the gocv tag")

// Tracer extracts contour hierarchies and component labels from
// binarized images, and computes minimum-area rectangles.
type Tracer interface {
	// Trace extracts the nested contour hierarchy of the white
	// foreground in a binarized image. Parent links and border types
	// follow the two-level outer/hole convention.
	Trace(binary *image.Gray) ([]contour.Contour[int], error)

	// Components labels connected foreground components, returning a
	// flat row-major per-pixel label map with 0 as background.
	Components(binary *image.Gray) ([]int, error)

	// MinAreaRect returns the minimum-area rectangle enclosing a
	// point set. It satisfies contour.MinAreaRectFunc[int].
	MinAreaRect(points []geom.Point[int]) geom.RotatedRect[int]
}
