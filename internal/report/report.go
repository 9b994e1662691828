// Package report assembles JSON-serializable summaries of an analysis
// pass for the contour-viz binary. It is pure data assembly: no I/O,
// no rendering.
package report

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/contourlab/contourdbg/contour"
	"github.com/contourlab/contourdbg/geom"
	"github.com/contourlab/contourdbg/regions"
)

// ContourSummary describes one traced contour and its metrics.
type ContourSummary struct {
	// Index is the contour's position in the traced hierarchy.
	Index int `json:"index"`

	// BorderType is "outer" or "hole".
	BorderType string `json:"border_type"`

	// PointCount is the number of polygon vertices.
	PointCount int `json:"point_count"`

	// Parent is the hierarchy index of the enclosing contour, or -1.
	Parent int `json:"parent"`

	// Perimeter is the closed-loop polygon perimeter in pixels.
	Perimeter float64 `json:"perimeter"`

	// Children is the number of directly nested contours.
	Children int `json:"children"`

	// Bounds is the axis-aligned projection of the contour's
	// minimum-area rectangle. Omitted for contours with fewer than 4
	// points, where no meaningful rectangle exists.
	Bounds *geom.Box `json:"bounds,omitempty"`
}

// RegionSummary describes one principal connected component and its
// assigned overlay color.
type RegionSummary struct {
	Label int    `json:"label"`
	Size  int    `json:"size"`
	Color string `json:"color"` // "#RRGGBB"
}

// Report is the full JSON output of one analysis pass.
type Report struct {
	Source         string           `json:"source"`
	Width          int              `json:"width"`
	Height         int              `json:"height"`
	MaxAspectRatio float64          `json:"max_aspect_ratio"`
	ContoursFound  int              `json:"contours_found"`
	ContoursKept   int              `json:"contours_kept"`
	Contours       []ContourSummary `json:"contours"`
	Regions        []RegionSummary  `json:"regions,omitempty"`
}

// Build summarizes a traced hierarchy. Contour summaries are listed
// in descending perimeter order but keep their original hierarchy
// indices, so parent links stay interpretable.
//
// contoursKept is the survivor count after aspect-ratio filtering,
// reported alongside the full hierarchy for before/after comparison.
func Build(
	source string,
	width, height int,
	contours []contour.Contour[int],
	contoursKept int,
	maxAspectRatio float64,
	minAreaRect contour.MinAreaRectFunc[int],
) *Report {
	counts := contour.ChildCounts(contours)

	summaries := make([]ContourSummary, len(contours))
	for i, c := range contours {
		s := ContourSummary{
			Index:      i,
			BorderType: c.BorderType.String(),
			PointCount: len(c.Points),
			Parent:     c.Parent,
			Perimeter:  contour.Perimeter(c.Points),
			Children:   counts[i],
		}
		if len(c.Points) >= 4 {
			bounds := minAreaRect(c.Points).AxisAlignedBounds()
			s.Bounds = &bounds
		}
		summaries[i] = s
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Perimeter > summaries[j].Perimeter
	})

	return &Report{
		Source:         source,
		Width:          width,
		Height:         height,
		MaxAspectRatio: maxAspectRatio,
		ContoursFound:  len(contours),
		ContoursKept:   contoursKept,
		Contours:       summaries,
	}
}

// RegionTable formats principal regions and their assigned colors for
// the report.
func RegionTable(principal []regions.Region, colors map[int]color.RGBA) []RegionSummary {
	table := make([]RegionSummary, len(principal))
	for i, r := range principal {
		c := colors[r.Label]
		table[i] = RegionSummary{
			Label: r.Label,
			Size:  r.Size,
			Color: fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		}
	}
	return table
}
