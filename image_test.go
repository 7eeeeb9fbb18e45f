package petragrd

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridImage(t *testing.T) {
	g, err := Read(rectFile().reader())
	require.NoError(t, err)

	img, err := GridImage(g)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())

	gray := img.(*image.Gray16)
	// row zero holds the smallest values and lands on the bottom image row
	assert.Equal(t, uint16(0), gray.Gray16At(0, 1).Y)
	assert.Equal(t, uint16(math.MaxUint16), gray.Gray16At(2, 0).Y)
	assert.Equal(t, uint16(13107), gray.Gray16At(1, 1).Y)
}

func TestGridImageSkipsNaN(t *testing.T) {
	g := &Grid{Data: NewRectangularData(2, 3, []float64{math.NaN(), 1, 2, 3, 4, 5})}

	img, err := GridImage(g)
	require.NoError(t, err)

	gray := img.(*image.Gray16)
	// the scale comes from the finite values alone and NaN cells paint black
	assert.Equal(t, uint16(0), gray.Gray16At(0, 1).Y)
	assert.Equal(t, uint16(16383), gray.Gray16At(2, 1).Y)
	assert.Equal(t, uint16(math.MaxUint16), gray.Gray16At(2, 0).Y)
}

func TestGridImageUniform(t *testing.T) {
	g := &Grid{Data: NewRectangularData(1, 2, []float64{7, 7})}

	img, err := GridImage(g)
	require.NoError(t, err)

	gray := img.(*image.Gray16)
	assert.Equal(t, uint16(0), gray.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(0), gray.Gray16At(1, 0).Y)
}

func TestGridImageTriangular(t *testing.T) {
	g, err := Read(triFile().reader())
	require.NoError(t, err)

	_, err = GridImage(g)
	var unsupported UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
}
