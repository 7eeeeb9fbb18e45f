package petragrd

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the decoded values of g to w as comma separated text with a
// header row. Rectangular grids produce one x,y,z row per lattice cell, with
// coordinates computed from the grid extents and steps. Triangulated grids
// produce one triangle,vertex,x,y,z row per vertex.
func WriteCSV(g *Grid, w io.Writer) error {
	cw := csv.NewWriter(w)
	switch data := g.Data.(type) {
	case RectangularData:
		if err := cw.Write([]string{"x", "y", "z"}); err != nil {
			return err
		}
		rows, cols := data.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				rec := []string{
					formatValue(g.XAt(c)),
					formatValue(g.YAt(r)),
					formatValue(data.At(r, c)),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
	case TriangularData:
		if err := cw.Write([]string{"triangle", "vertex", "x", "y", "z"}); err != nil {
			return err
		}
		for t := 0; t < data.Triangles(); t++ {
			for v := 0; v < 3; v++ {
				x, y, z := data.Vertex(t, v)
				rec := []string{
					strconv.Itoa(t),
					strconv.Itoa(v),
					formatValue(x),
					formatValue(y),
					formatValue(z),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
	default:
		return UnsupportedError("no grid values to export")
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
