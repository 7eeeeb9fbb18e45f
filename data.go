package petragrd

import "gonum.org/v1/gonum/mat"

// The decoded values of a grid. Exactly two kinds exist: RectangularData for
// lattice grids and TriangularData for triangulated surfaces. Callers branch
// with a type switch; no other implementations are possible.
type GridData interface {
	isGridData()
}

// Holds the values of a rectangular grid as a dense row by column matrix.
// Row zero corresponds to YMin and column zero to XMin.
type RectangularData struct {
	dense *mat.Dense
}

// NewRectangularData shapes values, in row major order, into a rows by cols
// grid. The matrix aliases values rather than copying them. Panics when the
// length of values is not rows times cols.
func NewRectangularData(rows, cols int, values []float64) RectangularData {
	// mat.NewDense rejects empty dimensions, but an empty grid still decodes.
	if rows == 0 || cols == 0 {
		if len(values) != 0 {
			panic("grd: values present for an empty grid")
		}
		return RectangularData{dense: &mat.Dense{}}
	}
	return RectangularData{dense: mat.NewDense(rows, cols, values)}
}

func (RectangularData) isGridData() {}

// Returns the number of rows and columns in the grid.
func (d RectangularData) Dims() (rows, cols int) {
	return d.dense.Dims()
}

// Returns the value of the cell at the given row and column.
func (d RectangularData) At(row, col int) float64 {
	return d.dense.At(row, col)
}

// Returns the grid values as a gonum matrix for further numeric work. The
// matrix shares its backing storage with the grid.
func (d RectangularData) Dense() *mat.Dense {
	return d.dense
}

// Holds the vertices of a triangulated grid. Within the file each triangle
// packs its nine coordinates x first, so the values for triangle t run
// v0.x, v1.x, v2.x, v0.y, v1.y, v2.y, v0.z, v1.z, v2.z. Accessors translate
// from (triangle, vertex, coordinate) indices so callers never deal with
// that interleaving.
type TriangularData struct {
	values []float64
}

// NewTriangularData wraps a flat coordinate slice, nine values per triangle
// in the file order described on TriangularData. Panics when the length of
// values is not a multiple of nine.
func NewTriangularData(values []float64) TriangularData {
	if len(values)%9 != 0 {
		panic("grd: triangle values must come nine per triangle")
	}
	return TriangularData{values: values}
}

func (TriangularData) isGridData() {}

// Returns the number of triangles in the grid.
func (d TriangularData) Triangles() int {
	return len(d.values) / 9
}

// Returns one coordinate of one vertex of triangle tri. The vertex index runs
// 0 to 2, and coord selects 0 for x, 1 for y, 2 for z.
func (d TriangularData) At(tri, vertex, coord int) float64 {
	if vertex < 0 || vertex > 2 || coord < 0 || coord > 2 {
		panic("grd: triangle vertex or coordinate out of range")
	}
	return d.values[tri*9+vertex+coord*3]
}

// Returns all three coordinates of one vertex of triangle tri.
func (d TriangularData) Vertex(tri, vertex int) (x, y, z float64) {
	return d.At(tri, vertex, 0), d.At(tri, vertex, 1), d.At(tri, vertex, 2)
}
