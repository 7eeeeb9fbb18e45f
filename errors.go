package petragrd

import "fmt"

// Raised by operations that a grid's data kind cannot support, such as
// converting a triangulated grid to a raster image.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return "grd: unsupported operation - " + string(e)
}

// The declared cell count of a grid must equal its row count times its column
// count. Files that disagree fail to decode with this error.
type SizeMismatchError struct {
	Size    uint32
	Rows    uint32
	Columns uint32
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("grd: cell count mismatch - size %d, rows %d, columns %d", e.Size, e.Rows, e.Columns)
}

// Stepping from XMin by XStep across the declared columns must land on XMax,
// to within a small relative tolerance. Files that disagree fail to decode
// with this error, carrying the header values that clashed.
type InvalidXSpecError struct {
	Min     float64
	Max     float64
	Step    float64
	Columns uint32
}

func (e InvalidXSpecError) Error() string {
	return fmt.Sprintf("grd: x extents do not agree with step - xmin %g, xmax %g, xstep %g, columns %d", e.Min, e.Max, e.Step, e.Columns)
}

// The y axis counterpart of InvalidXSpecError. Columns is not a slip: the
// recovered format checks the y extent against the column count, and every
// observed file satisfies that version of the check.
type InvalidYSpecError struct {
	Min     float64
	Max     float64
	Step    float64
	Columns uint32
}

func (e InvalidYSpecError) Error() string {
	return fmt.Sprintf("grd: y extents do not agree with step - ymin %g, ymax %g, ystep %g, columns %d", e.Min, e.Max, e.Step, e.Columns)
}

// A grid without triangles must carry exactly eight bytes of value data per
// declared cell. DataBytes reports how much actually trails the header.
type InvalidRectangularSizeError struct {
	Size      uint32
	DataBytes int64
}

func (e InvalidRectangularSizeError) Error() string {
	return fmt.Sprintf("grd: rectangular value block wrong length - %d cells declared, %d bytes present", e.Size, e.DataBytes)
}

// A triangulated grid must carry seventy two bytes of value data per declared
// cell, nine coordinates of eight bytes each. DataBytes reports how much
// actually trails the header.
type InvalidTriangleCountError struct {
	NTriangles uint32
	DataBytes  int64
}

func (e InvalidTriangleCountError) Error() string {
	return fmt.Sprintf("grd: triangular value block wrong length - %d triangles declared, %d bytes present", e.NTriangles, e.DataBytes)
}

// Unit of measure codes other than feet (0) and meters (1) have never been
// observed and fail the decode.
type InvalidXYUnitError struct {
	Code uint32
}

func (e InvalidXYUnitError) Error() string {
	return fmt.Sprintf("grd: invalid xy unit of measure code %d", e.Code)
}

type InvalidZUnitError struct {
	Code uint32
}

func (e InvalidZUnitError) Error() string {
	return fmt.Sprintf("grd: invalid z unit of measure code %d", e.Code)
}
