package regions

import (
	"testing"
)

func TestFromLabelMap(t *testing.T) {
	labels := []int{
		0, 1, 1, 0,
		2, 2, 2, 0,
		0, 3, -1, 1,
	}

	got := FromLabelMap(labels)
	want := []Region{{1, 3}, {2, 3}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d regions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("region %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFromLabelMap_AllBackground(t *testing.T) {
	if got := FromLabelMap([]int{0, 0, 0}); len(got) != 0 {
		t.Errorf("got %d regions for all-background map, want 0", len(got))
	}
}

func TestPrincipal(t *testing.T) {
	regions := []Region{
		{Label: 1, Size: 10},
		{Label: 2, Size: 40},
		{Label: 3, Size: 10},
		{Label: 4, Size: 25},
		{Label: 5, Size: 10},
	}

	tests := []struct {
		name string
		k    int
		want []Region
	}{
		{"k=0", 0, nil},
		{"k negative", -2, nil},
		{"top 2", 2, []Region{{2, 40}, {4, 25}}},
		{
			// Labels 1, 3 and 5 tie at size 10; lowest label wins.
			name: "tie broken by lowest label",
			k:    4,
			want: []Region{{2, 40}, {4, 25}, {1, 10}, {3, 10}},
		},
		{
			name: "k beyond input returns all, ranked",
			k:    99,
			want: []Region{{2, 40}, {4, 25}, {1, 10}, {3, 10}, {5, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Principal(regions, tt.k)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d regions, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("rank %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}

	// The input must stay untouched.
	if regions[0] != (Region{Label: 1, Size: 10}) || regions[1] != (Region{Label: 2, Size: 40}) {
		t.Errorf("Principal modified its input: %+v", regions)
	}
}

func TestPrincipalColors(t *testing.T) {
	regions := []Region{
		{Label: 7, Size: 100},
		{Label: 2, Size: 300},
		{Label: 9, Size: 50},
	}

	got := PrincipalColors(regions, 2, 200)
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2", len(got))
	}
	if _, ok := got[2]; !ok {
		t.Errorf("largest region (label 2) missing from assignments")
	}
	if _, ok := got[7]; !ok {
		t.Errorf("second region (label 7) missing from assignments")
	}
	for label, c := range got {
		if c.A != 200 {
			t.Errorf("label %d alpha = %d, want 200", label, c.A)
		}
	}

	// Rank order determines hue order: the largest region gets the
	// first palette entry (hue 0).
	if got[2].R < got[2].G || got[2].R < got[2].B {
		t.Errorf("largest region color = %v, want a red-dominant first palette entry", got[2])
	}
}
