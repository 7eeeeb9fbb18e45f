package petragrd

import "time"

// Represents the unit of distance used by a grid's coordinates and values.
// Only two codes have ever been observed in GRD files; any other value fails
// the decode.
type UnitOfMeasure uint32

const (
	UnitFeet   UnitOfMeasure = 0 // Distances in feet.
	UnitMeters UnitOfMeasure = 1 // Distances in meters.
)

func (u UnitOfMeasure) String() string {
	switch u {
	case UnitFeet:
		return "feet"
	case UnitMeters:
		return "meters"
	default:
		return "unknown"
	}
}

// A Grid is one decoded GRD file: the mapped surface metadata Petra stores in
// the fixed header region, plus the gridded values themselves. Grids are
// built only by Read and never modified afterwards.
//
// Several header fields record values whose meaning has not been recovered
// yet. They are kept verbatim so that no information is lost; nothing in this
// package interprets them.
type Grid struct {
	Version uint32 // Format version; every observed file carries 2.
	Name    string // Display name of the grid, typically the mapped horizon.
	Size    uint32 // Declared cell count; always Rows times Columns.

	// Easting and northing range of the lattice, in XYUnits.
	XMin float64
	XMax float64
	YMin float64
	YMax float64
	// Lattice spacing along each axis, in XYUnits.
	XStep float64
	YStep float64
	// Range of the gridded values, in ZUnits.
	ZMin float64
	ZMax float64

	Rows    uint32
	Columns uint32

	GridMethod     uint32 // Gridding algorithm selector; meaning not yet recovered.
	ProjectionCode uint32 // Numeric projection selector; meaning not yet recovered.

	XYUnits UnitOfMeasure // Unit of the coordinate axes.
	ZUnits  UnitOfMeasure // Unit of the gridded values.

	// Number of triangles in a triangulated grid. Zero means the values form
	// a rectangular lattice instead.
	NTriangles uint32

	CM   float64 // Central meridian of the projection, presumed decimal degrees.
	RLat float64 // Reference latitude of the projection, presumed decimal degrees.

	CreatedDate time.Time // When Petra computed the grid.

	SourceData      string // Free text describing the data the grid was computed from.
	UnknownMetadata string // Unidentified text region, retained verbatim.
	Projection      string // Map projection name, for example "Lambert Conformal Conic".
	Datum           string // Geodetic datum name, for example "NAD27".

	Data GridData // Decoded values: RectangularData or TriangularData.
}

// Reports whether the grid stores a triangulated surface rather than a
// rectangular lattice.
func (g *Grid) IsTriangular() bool {
	return g.NTriangles > 0
}

// Returns the easting of lattice column col.
func (g *Grid) XAt(col int) float64 {
	return g.XMin + float64(col)*g.XStep
}

// Returns the northing of lattice row row. Row zero sits at YMin.
func (g *Grid) YAt(row int) float64 {
	return g.YMin + float64(row)*g.YStep
}
