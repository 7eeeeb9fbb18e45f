package petragrd

// Describes where each field group of a GRD file lives. Petra wrote grids with
// fixed absolute offsets rather than a self-describing structure, so the layout
// of the single observed format version is recorded here as data. A future
// revision with shifted offsets becomes another Layout value, not new decode
// code.
//
// The observed layout, all multi-byte values little-endian:
//
//	offset  size  contents
//	0x0000     4  format version (u32, always 2 in observed files)
//	0x0004    81  grid name (text)
//	0x0055     4  declared cell count (u32)
//	0x0059    64  xmin, xmax, ymin, ymax, xstep, ystep, zmin, zmax (f64 each)
//	0x00b9    16  central meridian, reference latitude (f64 each)
//	0x00e1     8  creation date (f64 days since 1899-12-30)
//	0x03fd    20  rows, columns, gridding method, projection code, xy units (u32 each)
//	0x0429     4  z units (u32)
//	0x0431     4  triangle count (u32)
//	0x05b9   246  source data description (text)
//	0x08bf  2009  unidentified metadata (text)
//	0x1098    65  projection name (text)
//	0x10d9   195  datum name (text)
//	0x119c     -  grid values (f64 each), running to end of file
//
// The gaps between groups hold bytes whose meaning is still unknown; the
// decoder skips them. The three text fields starting at 0x08bf are contiguous
// and butt up exactly against the start of the grid values.
type Layout struct {
	HeaderOffset    int64 // version, name, cell count, extents and steps
	CMRLatOffset    int64 // central meridian and reference latitude
	DateOffset      int64 // creation date
	CountsOffset    int64 // rows through xy units
	ZUnitsOffset    int64 // z units
	TrianglesOffset int64 // triangle count
	SourceOffset    int64 // source data description
	MetadataOffset  int64 // unidentified metadata, projection, datum
	DataOffset      int64 // first grid value

	NameWidth     int // bytes in the grid name text field
	SourceWidth   int // bytes in the source data text field
	MetadataWidth int // bytes in the unidentified metadata text field
	ProjWidth     int // bytes in the projection name text field
	DatumWidth    int // bytes in the datum name text field
}

// The layout of every GRD file observed so far, all of which carry format
// version 2. The widths of the three text fields at 0x08bf were inferred from
// zero filled regions and may divide the true fields incorrectly.
var LayoutV2 = Layout{
	HeaderOffset:    0x0000,
	CMRLatOffset:    0x00b9,
	DateOffset:      0x00e1,
	CountsOffset:    0x03fd,
	ZUnitsOffset:    0x0429,
	TrianglesOffset: 0x0431,
	SourceOffset:    0x05b9,
	MetadataOffset:  0x08bf,
	DataOffset:      0x119c,

	NameWidth:     81,
	SourceWidth:   246,
	MetadataWidth: 2009,
	ProjWidth:     65,
	DatumWidth:    195,
}
