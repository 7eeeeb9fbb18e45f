package petragrd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangularRowMajor(t *testing.T) {
	rect := NewRectangularData(2, 3, []float64{0, 1, 2, 3, 4, 5})

	rows, cols := rect.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3.0, rect.At(1, 0))
	assert.Equal(t, 5.0, rect.At(1, 2))
	assert.Equal(t, 5.0, rect.Dense().At(1, 2))
}

func TestRectangularEmpty(t *testing.T) {
	rect := NewRectangularData(0, 0, nil)
	rows, cols := rect.Dims()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
}

func TestRectangularEmptyWithValues(t *testing.T) {
	assert.Panics(t, func() { NewRectangularData(0, 3, []float64{1}) })
}

func TestTriangularIndexing(t *testing.T) {
	values := make([]float64, 18)
	for i := range values {
		values[i] = float64(i)
	}
	tri := NewTriangularData(values)

	assert.Equal(t, 2, tri.Triangles())
	// coordinate c of vertex v in triangle n lives at element n*9+v+c*3
	for n := 0; n < 2; n++ {
		for v := 0; v < 3; v++ {
			for c := 0; c < 3; c++ {
				assert.Equal(t, float64(n*9+v+c*3), tri.At(n, v, c))
			}
		}
	}
}

func TestTriangularVertex(t *testing.T) {
	values := make([]float64, 18)
	for i := range values {
		values[i] = float64(i)
	}
	tri := NewTriangularData(values)

	x, y, z := tri.Vertex(0, 0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 3.0, y)
	assert.Equal(t, 6.0, z)

	x, y, z = tri.Vertex(1, 2)
	assert.Equal(t, 11.0, x)
	assert.Equal(t, 14.0, y)
	assert.Equal(t, 17.0, z)
}

func TestTriangularAtOutOfRange(t *testing.T) {
	tri := NewTriangularData(make([]float64, 9))
	assert.Panics(t, func() { tri.At(0, 3, 0) })
	assert.Panics(t, func() { tri.At(0, 0, 3) })
	assert.Panics(t, func() { tri.At(0, -1, 0) })
	assert.Panics(t, func() { tri.At(1, 0, 0) })
}

func TestNewTriangularDataBadLength(t *testing.T) {
	assert.Panics(t, func() { NewTriangularData(make([]float64, 10)) })
}
