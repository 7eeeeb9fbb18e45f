package petragrd

import (
	"image"
	"image/color"
	"math"
)

// GridImage renders the values of a rectangular grid as a 16 bit grayscale
// image, darkest at the smallest value present and brightest at the largest.
// Row zero of the grid sits at YMin, so rows are flipped to put north at the
// top of the image. Triangulated grids have no raster to render and return
// an UnsupportedError.
func GridImage(g *Grid) (image.Image, error) {
	rect, ok := g.Data.(RectangularData)
	if !ok {
		return nil, UnsupportedError("only rectangular grids convert to images")
	}
	rows, cols := rect.Dims()

	// Scale against the values actually present rather than the declared
	// ZMin and ZMax, which some files overstate.
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := rect.At(r, c)
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo

	img := image.NewGray16(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := rect.At(r, c)
			var y uint16
			if !math.IsNaN(v) && span > 0 {
				y = uint16((v - lo) / span * math.MaxUint16)
			}
			img.SetGray16(c, rows-1-r, color.Gray16{Y: y})
		}
	}
	return img, nil
}
