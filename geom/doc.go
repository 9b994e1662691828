// Package geom provides the primitive geometry types shared by the
// contour analysis packages: generic 2D points, rotated rectangles as
// produced by an external minimum-area-rectangle primitive, and
// axis-aligned bounding boxes.
//
// # Coordinate System
//
// All coordinates follow the standard image convention:
//   - Origin (0, 0) at the top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Numeric Types
//
// Point and RotatedRect are generic over Coord, which covers every
// fixed-size integer and floating-point type. The capability set this
// buys is deliberately small: values are copyable, comparable with the
// < and > operators (a partial order for floats), and convertible to
// float64. NaN coordinates are not defended against; operations on
// them produce unspecified but non-crashing results.
package geom
