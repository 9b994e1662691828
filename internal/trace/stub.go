//go:build !gocv

package trace

import (
	"image"

	"github.com/contourlab/contourdbg/contour"
	"github.com/contourlab/contourdbg/geom"
)

// New returns a stub Tracer whose operations fail with ErrUnavailable.
func New() Tracer {
	return stubTracer{}
}

type stubTracer struct{}

func (stubTracer) Trace(binary *image.Gray) ([]contour.Contour[int], error) {
	return nil, ErrUnavailable
}

func (stubTracer) Components(binary *image.Gray) ([]int, error) {
	return nil, ErrUnavailable
}

// MinAreaRect returns the zero rectangle. Callers never reach it in
// practice because Trace fails first.
func (stubTracer) MinAreaRect(points []geom.Point[int]) geom.RotatedRect[int] {
	return geom.RotatedRect[int]{}
}
