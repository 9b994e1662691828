//go:build !gocv

package trace

import (
	"errors"
	"image"
	"testing"
)

func TestStubTracer(t *testing.T) {
	tr := New()
	img := image.NewGray(image.Rect(0, 0, 8, 8))

	if _, err := tr.Trace(img); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Trace error = %v, want ErrUnavailable", err)
	}
	if _, err := tr.Components(img); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Components error = %v, want ErrUnavailable", err)
	}
}
