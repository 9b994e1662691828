package geom

// Coord is the set of numeric types usable as point coordinates.
//
// Every member is copyable, ordered by the < and > operators (only
// partially for floats, where NaN compares false against everything),
// and convertible to float64. Integer coordinates wider than 53 bits
// may lose precision when converted.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Point represents a 2D coordinate in pixel space.
type Point[T Coord] struct {
	X T `json:"x"` // Horizontal position (0 = leftmost)
	Y T `json:"y"` // Vertical position (0 = topmost)
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Coord](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}
