package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/contourlab/contourdbg/contour"
	"github.com/contourlab/contourdbg/geom"
	"github.com/contourlab/contourdbg/internal/trace"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

// saveContourOverlay draws every contour as a closed polygon over a
// copy of the base canvas and saves the result.
func saveContourOverlay(path string, base *image.NRGBA, contours []contour.Contour[int], c color.NRGBA) error {
	canvas := imaging.Clone(base)
	for _, ct := range contours {
		drawPolygon(canvas, ct.Points, c)
	}
	return save(path, canvas)
}

// saveBoxOverlay draws the minimum-area rectangle (green) and its
// axis-aligned projection (red) of the largest traced contour. Picking
// the largest contour is demo logic, not a library contract.
func saveBoxOverlay(path string, base *image.NRGBA, contours []contour.Contour[int], tracer trace.Tracer) error {
	var largest *contour.Contour[int]
	for i := range contours {
		if largest == nil || len(contours[i].Points) > len(largest.Points) {
			largest = &contours[i]
		}
	}
	if largest == nil || len(largest.Points) < 4 {
		return nil
	}

	canvas := imaging.Clone(base)

	obb := tracer.MinAreaRect(largest.Points)
	for i := 0; i < 4; i++ {
		drawLine(canvas, obb[i], obb[(i+1)%4], green)
	}

	aabb := obb.AxisAlignedBounds()
	x, y := int(aabb.X), int(aabb.Y)
	w, h := int(aabb.Width), int(aabb.Height)
	drawPolygon(canvas, []geom.Point[int]{
		{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
	}, red)

	return save(path, canvas)
}

// saveComponentOverlay paints every pixel of a principal component in
// its assigned palette color.
func saveComponentOverlay(path string, base *image.NRGBA, labels []int, colors map[int]color.RGBA) error {
	canvas := imaging.Clone(base)
	w := canvas.Bounds().Dx()
	for i, label := range labels {
		c, ok := colors[label]
		if !ok {
			continue
		}
		canvas.SetNRGBA(i%w, i/w, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	}
	return save(path, canvas)
}

func save(path string, canvas *image.NRGBA) error {
	if err := imaging.Save(canvas, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// drawPolygon draws the closed outline of a point sequence.
func drawPolygon(canvas *image.NRGBA, points []geom.Point[int], c color.NRGBA) {
	if len(points) == 0 {
		return
	}
	prev := points[len(points)-1]
	for _, p := range points {
		drawLine(canvas, prev, p, c)
		prev = p
	}
}

// drawLine rasterizes a line segment with Bresenham's algorithm.
func drawLine(canvas *image.NRGBA, a, b geom.Point[int], c color.NRGBA) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	err := dx + dy
	for {
		canvas.SetNRGBA(x, y, c)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
