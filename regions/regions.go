// Package regions selects and colors the principal connected
// components of a labeled image.
//
// The per-pixel label map comes from an external connected-component
// labelling collaborator; label 0 is background by convention. This
// package only tallies, ranks and assigns colors; it never labels
// pixels itself and never draws.
package regions

import (
	"image/color"
	"sort"

	"github.com/contourlab/contourdbg/palette"
)

// Region is a labeled connected component and its size in pixels.
type Region struct {
	Label int `json:"label"`
	Size  int `json:"size"`
}

// FromLabelMap tallies region sizes from a flat per-pixel label map.
//
// Label 0 (background) and negative labels are skipped. The result is
// ordered by ascending label.
func FromLabelMap(labels []int) []Region {
	sizes := make(map[int]int)
	for _, l := range labels {
		if l <= 0 {
			continue
		}
		sizes[l]++
	}

	out := make([]Region, 0, len(sizes))
	for l, n := range sizes {
		out = append(out, Region{Label: l, Size: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Principal returns the k largest regions by size.
//
// Ties in size break toward the lowest numeric label, so the result
// is fully deterministic. k <= 0 yields an empty result; k larger
// than the input returns every region, ranked. The input slice is not
// modified.
func Principal(regions []Region, k int) []Region {
	if k <= 0 {
		return nil
	}

	ranked := make([]Region, len(regions))
	copy(ranked, regions)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Size != ranked[j].Size {
			return ranked[i].Size > ranked[j].Size
		}
		return ranked[i].Label < ranked[j].Label
	})

	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// PrincipalColors assigns a contrasting color to each of the k
// principal regions, keyed by label.
//
// Colors come from palette.Contrasting in rank order: the largest
// region gets hue 0, the next the following hue step, and so on.
func PrincipalColors(regions []Region, k int, alpha uint8) map[int]color.RGBA {
	principal := Principal(regions, k)
	colors := palette.Contrasting(len(principal), alpha)

	assigned := make(map[int]color.RGBA, len(principal))
	for i, r := range principal {
		assigned[r.Label] = colors[i]
	}
	return assigned
}
