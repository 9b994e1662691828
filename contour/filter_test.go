package contour

import (
	"math"
	"testing"

	"github.com/contourlab/contourdbg/geom"
)

// bboxRect stands in for the external minimum-area-rectangle
// primitive. It returns the axis-aligned bounding rectangle, which is
// the true minimum-area rectangle for the axis-aligned fixtures used
// in these tests.
func bboxRect(points []geom.Point[int]) geom.RotatedRect[int] {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return geom.RotatedRect[int]{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	}
}

func square(x, y, side int) Contour[int] {
	return Contour[int]{
		Points:     pts(x, y, x+side, y, x+side, y+side, x, y+side),
		BorderType: Outer,
		Parent:     NoParent,
	}
}

func rect(x, y, w, h int) Contour[int] {
	return Contour[int]{
		Points:     pts(x, y, x+w, y, x+w, y+h, x, y+h),
		BorderType: Outer,
		Parent:     NoParent,
	}
}

func TestFilterByAspectRatio(t *testing.T) {
	tests := []struct {
		name           string
		contours       []Contour[int]
		maxAspectRatio float64
		wantKept       int
	}{
		{
			name:           "1:1 square kept at 5.0",
			contours:       []Contour[int]{square(10, 10, 10)},
			maxAspectRatio: 5.0,
			wantKept:       1,
		},
		{
			name:           "10:1 rectangle removed at 5.0",
			contours:       []Contour[int]{rect(0, 0, 100, 10)},
			maxAspectRatio: 5.0,
			wantKept:       0,
		},
		{
			name:           "10:1 rectangle kept at 15.0",
			contours:       []Contour[int]{rect(0, 0, 100, 10)},
			maxAspectRatio: 15.0,
			wantKept:       1,
		},
		{
			name:           "exactly 5:1 removed at 5.0 (strict threshold)",
			contours:       []Contour[int]{rect(0, 0, 50, 10)},
			maxAspectRatio: 5.0,
			wantKept:       0,
		},
		{
			name:           "fewer than 4 points always removed",
			contours:       []Contour[int]{{Points: pts(0, 0, 1, 1), BorderType: Outer, Parent: NoParent}},
			maxAspectRatio: 100.0,
			wantKept:       0,
		},
		{
			name: "near-zero-width rectangle always removed",
			contours: []Contour[int]{
				{Points: pts(0, 0, 3, 0, 7, 0, 10, 0), BorderType: Outer, Parent: NoParent},
			},
			maxAspectRatio: 1e9,
			wantKept:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByAspectRatio(tt.contours, tt.maxAspectRatio, nil, bboxRect)
			if len(got) != tt.wantKept {
				t.Errorf("kept %d contours, want %d", len(got), tt.wantKept)
			}
		})
	}
}

func TestFilterByAspectRatio_BorderType(t *testing.T) {
	hole := square(30, 30, 10)
	hole.BorderType = Hole
	hole.Parent = 0

	contours := []Contour[int]{square(10, 10, 10), rect(0, 0, 100, 10), hole}

	only := Outer
	got := FilterByAspectRatio(contours, 100.0, &only, bboxRect)
	if len(got) != 2 {
		t.Fatalf("kept %d contours, want both outer contours", len(got))
	}
	for _, c := range got {
		if c.BorderType == Hole {
			t.Errorf("hole contour survived an Outer-only filter")
		}
	}
}

func TestFilterByAspectRatio_PreservesOrder(t *testing.T) {
	contours := []Contour[int]{
		square(0, 0, 10),
		rect(0, 0, 100, 10), // removed at 5.0
		square(50, 50, 20),
		square(100, 100, 5),
	}

	got := FilterByAspectRatio(contours, 5.0, nil, bboxRect)
	if len(got) != 3 {
		t.Fatalf("kept %d contours, want 3", len(got))
	}
	wantFirst := []geom.Point[int]{geom.Pt(0, 0), geom.Pt(50, 50), geom.Pt(100, 100)}
	for i, c := range got {
		if c.Points[0] != wantFirst[i] {
			t.Errorf("survivor %d starts at %v, want %v", i, c.Points[0], wantFirst[i])
		}
	}
}

func TestFilterByAspectRatio_CombinedCriteria(t *testing.T) {
	hole := square(30, 30, 10)
	hole.BorderType = Hole

	contours := []Contour[int]{square(10, 10, 10), rect(0, 0, 100, 10), hole}

	only := Outer
	got := FilterByAspectRatio(contours, 5.0, &only, bboxRect)
	if len(got) != 1 {
		t.Fatalf("kept %d contours, want only the compact outer square", len(got))
	}
	if got[0].Points[0] != geom.Pt(10, 10) {
		t.Errorf("survivor starts at %v, want (10,10)", got[0].Points[0])
	}
}

func TestFilterByAspectRatio_InvalidThresholdPanics(t *testing.T) {
	invalid := []struct {
		name string
		max  float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("FilterByAspectRatio(max=%v) did not panic", tt.max)
				}
			}()
			FilterByAspectRatio([]Contour[int]{square(0, 0, 10)}, tt.max, nil, bboxRect)
		})
	}
}
