//go:build gocv

package trace

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/contourlab/contourdbg/contour"
	"github.com/contourlab/contourdbg/geom"
)

// New returns a Tracer backed by OpenCV.
func New() Tracer {
	return gocvTracer{}
}

type gocvTracer struct{}

// Trace wraps gocv.FindContoursWithParams in CCOMP mode, which builds
// a two-level hierarchy: top-level contours are outer borders, their
// children are hole borders. OpenCV encodes "no parent" as -1, which
// maps directly onto contour.NoParent.
func (gocvTracer) Trace(binary *image.Gray) ([]contour.Contour[int], error) {
	mat, err := gocv.ImageGrayToMatGray(binary)
	if err != nil {
		return nil, fmt.Errorf("trace: converting image to mat: %w", err)
	}
	defer mat.Close()

	hierarchy := gocv.NewMat()
	defer hierarchy.Close()

	found := gocv.FindContoursWithParams(mat, &hierarchy, gocv.RetrievalCComp, gocv.ChainApproxSimple)
	defer found.Close()

	out := make([]contour.Contour[int], 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		pv := found.At(i)
		points := make([]geom.Point[int], 0, pv.Size())
		for j := 0; j < pv.Size(); j++ {
			p := pv.At(j)
			points = append(points, geom.Pt(p.X, p.Y))
		}

		// Hierarchy entries are [next, previous, firstChild, parent].
		parent := int(hierarchy.GetVeciAt(0, i)[3])

		borderType := contour.Outer
		if parent >= 0 {
			borderType = contour.Hole
		}

		out = append(out, contour.Contour[int]{
			Points:     points,
			BorderType: borderType,
			Parent:     parent,
		})
	}
	return out, nil
}

// Components wraps gocv.ConnectedComponents, flattening the label mat
// into a row-major []int with 0 as background.
func (gocvTracer) Components(binary *image.Gray) ([]int, error) {
	mat, err := gocv.ImageGrayToMatGray(binary)
	if err != nil {
		return nil, fmt.Errorf("trace: converting image to mat: %w", err)
	}
	defer mat.Close()

	labelMat := gocv.NewMat()
	defer labelMat.Close()
	gocv.ConnectedComponents(mat, &labelMat)

	rows, cols := labelMat.Rows(), labelMat.Cols()
	labels := make([]int, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			labels = append(labels, int(labelMat.GetIntAt(y, x)))
		}
	}
	return labels, nil
}

// MinAreaRect wraps gocv.MinAreaRect.
func (gocvTracer) MinAreaRect(points []geom.Point[int]) geom.RotatedRect[int] {
	ipts := make([]image.Point, len(points))
	for i, p := range points {
		ipts[i] = image.Pt(p.X, p.Y)
	}

	pv := gocv.NewPointVectorFromPoints(ipts)
	defer pv.Close()

	found := gocv.MinAreaRect(pv)
	var rect geom.RotatedRect[int]
	for i := 0; i < 4; i++ {
		rect[i] = geom.Pt(found.Points[i].X, found.Points[i].Y)
	}
	return rect
}
