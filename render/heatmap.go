// Package render draws decoded grids with gonum/plot. It lives apart from the
// decoder so that programs which only read headers do not pull in the
// plotting stack.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gracefulearth/petragrd"
)

// Adapts a rectangular grid to the column major interface the heat map
// plotter expects. Lattice coordinates come from the grid extents, so the
// axes of the finished plot read in map units.
type gridXYZ struct {
	grid *petragrd.Grid
	data petragrd.RectangularData
}

func (g gridXYZ) Dims() (c, r int) {
	r, c = g.data.Dims()
	return c, r
}

func (g gridXYZ) Z(c, r int) float64 {
	return g.data.At(r, c)
}

func (g gridXYZ) X(c int) float64 {
	return g.grid.XAt(c)
}

func (g gridXYZ) Y(r int) float64 {
	return g.grid.YAt(r)
}

// Heatmap builds a colored elevation plot of a rectangular grid, low values
// in blue and high in red, with axes in the grid's coordinate units. The
// caller can restyle the returned plot before saving it. Triangulated and
// empty grids return an UnsupportedError.
func Heatmap(g *petragrd.Grid) (*plot.Plot, error) {
	rect, ok := g.Data.(petragrd.RectangularData)
	if !ok {
		return nil, petragrd.UnsupportedError("only rectangular grids render as heat maps")
	}
	rows, cols := rect.Dims()
	if rows == 0 || cols == 0 {
		return nil, petragrd.UnsupportedError("empty grids render as nothing")
	}

	h := plotter.NewHeatMap(gridXYZ{grid: g, data: rect}, moreland.SmoothBlueRed().Palette(255))

	p := plot.New()
	p.Title.Text = g.Name
	p.X.Label.Text = fmt.Sprintf("easting (%s)", g.XYUnits)
	p.Y.Label.Text = fmt.Sprintf("northing (%s)", g.XYUnits)
	p.Add(h)
	return p, nil
}

// SaveHeatmap renders g and writes the plot to file, choosing the image
// format from the file extension as the plot package does.
func SaveHeatmap(g *petragrd.Grid, width, height vg.Length, file string) error {
	p, err := Heatmap(g)
	if err != nil {
		return err
	}
	return p.Save(width, height, file)
}
