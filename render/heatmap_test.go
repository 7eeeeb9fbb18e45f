package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/gracefulearth/petragrd"
)

func testGrid() *petragrd.Grid {
	return &petragrd.Grid{
		Name:    "TOP_SAND",
		XMin:    100,
		XMax:    102,
		XStep:   1,
		YMin:    200,
		YMax:    202,
		YStep:   1,
		Rows:    2,
		Columns: 3,
		XYUnits: petragrd.UnitFeet,
		Data:    petragrd.NewRectangularData(2, 3, []float64{0, 1, 2, 3, 4, 5}),
	}
}

func TestGridXYZMapsLattice(t *testing.T) {
	g := testGrid()
	xyz := gridXYZ{grid: g, data: g.Data.(petragrd.RectangularData)}

	c, r := xyz.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 5.0, xyz.Z(2, 1))
	assert.Equal(t, 102.0, xyz.X(2))
	assert.Equal(t, 201.0, xyz.Y(1))
}

func TestHeatmap(t *testing.T) {
	p, err := Heatmap(testGrid())
	require.NoError(t, err)
	assert.Equal(t, "TOP_SAND", p.Title.Text)
	assert.Equal(t, "easting (feet)", p.X.Label.Text)
	assert.Equal(t, "northing (feet)", p.Y.Label.Text)
}

func TestHeatmapTriangular(t *testing.T) {
	g := testGrid()
	g.NTriangles = 1
	g.Data = petragrd.NewTriangularData(make([]float64, 9))

	_, err := Heatmap(g)
	var unsupported petragrd.UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
}

func TestHeatmapEmpty(t *testing.T) {
	g := testGrid()
	g.Data = petragrd.NewRectangularData(0, 0, nil)

	_, err := Heatmap(g)
	assert.Error(t, err)
}

func TestSaveHeatmap(t *testing.T) {
	file := filepath.Join(t.TempDir(), "grid.png")
	require.NoError(t, SaveHeatmap(testGrid(), 4*vg.Inch, 3*vg.Inch, file))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
