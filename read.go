package petragrd

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Relative disagreement allowed between a declared axis extent and the extent
// implied by its step size and the column count. Values exactly at the
// tolerance pass; only strictly larger errors fail.
const extentTolerance = 1e-4

// Read decodes the grid in r. The reader must cover one complete GRD file:
// decoding seeks both forwards and backwards, and measures the total length
// to locate the end of the value block. On success every field of the
// returned Grid is populated; on failure the Grid is nil and the error
// reports the first problem found, either a wrapped transport error or one
// of the typed validation errors in this package.
func Read(r io.ReadSeeker) (*Grid, error) {
	return decodeGrid(r, LayoutV2)
}

func decodeGrid(r io.ReadSeeker, l Layout) (*Grid, error) {
	d := &decoder{r: r, l: l}
	g := &Grid{}

	// Fixed header region first: version, name, cell count, extents.
	if err := d.readAt(l.HeaderOffset, &g.Version); err != nil {
		return nil, fmt.Errorf("grd: grid header: %w", err)
	}
	name, err := d.text(l.NameWidth)
	if err != nil {
		return nil, fmt.Errorf("grd: grid name: %w", err)
	}
	g.Name = name
	if err := d.read(&g.Size, &g.XMin, &g.XMax, &g.YMin, &g.YMax, &g.XStep, &g.YStep, &g.ZMin, &g.ZMax); err != nil {
		return nil, fmt.Errorf("grd: grid extents: %w", err)
	}

	if err := d.readAt(l.CMRLatOffset, &g.CM, &g.RLat); err != nil {
		return nil, fmt.Errorf("grd: projection constants: %w", err)
	}

	var days float64
	if err := d.readAt(l.DateOffset, &days); err != nil {
		return nil, fmt.Errorf("grd: creation date: %w", err)
	}
	g.CreatedDate = decodeDate(days)

	var xyCode, zCode uint32
	if err := d.readAt(l.CountsOffset, &g.Rows, &g.Columns, &g.GridMethod, &g.ProjectionCode, &xyCode); err != nil {
		return nil, fmt.Errorf("grd: grid counts: %w", err)
	}
	g.XYUnits = UnitOfMeasure(xyCode)
	if g.XYUnits != UnitFeet && g.XYUnits != UnitMeters {
		return nil, InvalidXYUnitError{Code: xyCode}
	}

	if err := d.readAt(l.ZUnitsOffset, &zCode); err != nil {
		return nil, fmt.Errorf("grd: z units: %w", err)
	}
	g.ZUnits = UnitOfMeasure(zCode)
	if g.ZUnits != UnitFeet && g.ZUnits != UnitMeters {
		return nil, InvalidZUnitError{Code: zCode}
	}

	if err := d.readAt(l.TrianglesOffset, &g.NTriangles); err != nil {
		return nil, fmt.Errorf("grd: triangle count: %w", err)
	}

	// The declared counts have to agree with each other before any data is
	// touched. Products run in 64 bits so huge counts cannot wrap to a match.
	if uint64(g.Rows)*uint64(g.Columns) != uint64(g.Size) {
		return nil, SizeMismatchError{Size: g.Size, Rows: g.Rows, Columns: g.Columns}
	}

	xImplied := g.XMin + float64(g.Columns-1)*g.XStep
	if math.Abs(xImplied-g.XMax)/math.Abs(g.XMax) > extentTolerance {
		return nil, InvalidXSpecError{Min: g.XMin, Max: g.XMax, Step: g.XStep, Columns: g.Columns}
	}
	// The column count below is not a typo in this decoder: recovered files
	// really do check their y extent against the number of columns, and all
	// of them pass under that reading.
	yImplied := g.YMin + float64(g.Columns-1)*g.YStep
	if math.Abs(yImplied-g.YMax)/math.Abs(g.YMax) > extentTolerance {
		return nil, InvalidYSpecError{Min: g.YMin, Max: g.YMax, Step: g.YStep, Columns: g.Columns}
	}

	end, err := d.r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("grd: measure value block: %w", err)
	}
	dataBytes := end - l.DataOffset

	if g.NTriangles == 0 {
		if dataBytes/8 != int64(g.Size) {
			return nil, InvalidRectangularSizeError{Size: g.Size, DataBytes: dataBytes}
		}
	} else {
		// Triangular value blocks measure against the declared cell count,
		// not the triangle count; observed files keep the two equal.
		if dataBytes/72 != int64(g.Size) {
			return nil, InvalidTriangleCountError{NTriangles: g.NTriangles, DataBytes: dataBytes}
		}
	}

	if g.SourceData, err = d.textAt(l.SourceOffset, l.SourceWidth); err != nil {
		return nil, fmt.Errorf("grd: source data: %w", err)
	}
	if g.UnknownMetadata, err = d.textAt(l.MetadataOffset, l.MetadataWidth); err != nil {
		return nil, fmt.Errorf("grd: metadata block: %w", err)
	}
	if g.Projection, err = d.text(l.ProjWidth); err != nil {
		return nil, fmt.Errorf("grd: projection name: %w", err)
	}
	if g.Datum, err = d.text(l.DatumWidth); err != nil {
		return nil, fmt.Errorf("grd: datum name: %w", err)
	}

	if _, err := d.r.Seek(l.DataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("grd: grid values: %w", err)
	}
	if g.NTriangles == 0 {
		values := make([]float64, g.Size)
		if err := d.read(values); err != nil {
			return nil, fmt.Errorf("grd: grid values: %w", err)
		}
		g.Data = NewRectangularData(int(g.Rows), int(g.Columns), values)
	} else {
		values := make([]float64, 9*int64(g.NTriangles))
		if err := d.read(values); err != nil {
			return nil, fmt.Errorf("grd: grid values: %w", err)
		}
		g.Data = NewTriangularData(values)
	}

	return g, nil
}

// Wraps the source stream with the little endian primitive reads the format
// is made of. Methods advance the stream; readAt and textAt seek first.
type decoder struct {
	r io.ReadSeeker
	l Layout
}

func (d *decoder) read(vals ...any) error {
	for _, v := range vals {
		if err := binary.Read(d.r, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) readAt(offset int64, vals ...any) error {
	if _, err := d.r.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	return d.read(vals...)
}

func (d *decoder) text(width int) (string, error) {
	return readText(d.r, width)
}

func (d *decoder) textAt(offset int64, width int) (string, error) {
	if _, err := d.r.Seek(offset, io.SeekStart); err != nil {
		return "", err
	}
	return readText(d.r, width)
}
