package contour

import (
	"math"
	"sort"

	"github.com/contourlab/contourdbg/geom"
)

// RankedContour pairs a contour with its computed perimeter.
type RankedContour[T geom.Coord] struct {
	Contour   Contour[T]
	Perimeter float64
}

// CountedContour pairs a contour with its direct-child count.
type CountedContour[T geom.Coord] struct {
	Contour  Contour[T]
	Children int
}

// Perimeter returns the closed-loop perimeter of a point sequence:
// the sum of Euclidean distances between consecutive points, with the
// last point wrapping back to the first.
//
// Fewer than 2 points yield 0. A 2-point sequence yields a
// there-and-back perimeter of twice the segment length, not 0.
func Perimeter[T geom.Coord](points []geom.Point[T]) float64 {
	if len(points) < 2 {
		return 0
	}
	var sum float64
	prev := points[len(points)-1]
	for _, p := range points {
		sum += math.Hypot(float64(p.X)-float64(prev.X), float64(p.Y)-float64(prev.Y))
		prev = p
	}
	return sum
}

// RankByPerimeter computes the perimeter of every contour and returns
// the contours paired with their perimeters, sorted in descending
// order.
//
// The input slice is consumed: contour values are moved into the
// result and the caller must not reuse the slice afterwards. The sort
// is unstable, so the relative order of contours with equal perimeter
// is unspecified.
//
// Runs in O(total points) for the perimeters plus O(n log n) for the
// sort.
func RankByPerimeter[T geom.Coord](contours []Contour[T]) []RankedContour[T] {
	ranked := make([]RankedContour[T], len(contours))
	for i, c := range contours {
		ranked[i] = RankedContour[T]{Contour: c, Perimeter: Perimeter(c.Points)}
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Perimeter > ranked[j].Perimeter
	})

	return ranked
}

// ChildCounts returns the number of direct children of each contour,
// indexed by the contour's position in the hierarchy.
//
// A contour contributes to the count of the contour its Parent index
// names. Parent indices outside [0, len) are ignored rather than
// faulted; the hierarchy is assumed trustworthy and the bound check is
// cheap.
func ChildCounts[T geom.Coord](contours []Contour[T]) []int {
	counts := make([]int, len(contours))
	for _, c := range contours {
		if c.Parent >= 0 && c.Parent < len(counts) {
			counts[c.Parent]++
		}
	}
	return counts
}

// RankByChildCount pairs every contour with its direct-child count
// and returns the pairs sorted by count in descending order.
//
// Like RankByPerimeter, the input slice is consumed and ties sort in
// unspecified order.
func RankByChildCount[T geom.Coord](contours []Contour[T]) []CountedContour[T] {
	counts := ChildCounts(contours)

	counted := make([]CountedContour[T], len(contours))
	for i, c := range contours {
		counted[i] = CountedContour[T]{Contour: c, Children: counts[i]}
	}

	sort.Slice(counted, func(i, j int) bool {
		return counted[i].Children > counted[j].Children
	})

	return counted
}
