package petragrd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutV2TextRunsToData(t *testing.T) {
	// the three text fields starting at the metadata offset butt directly
	// against the value block
	end := LayoutV2.MetadataOffset + int64(LayoutV2.MetadataWidth) +
		int64(LayoutV2.ProjWidth) + int64(LayoutV2.DatumWidth)
	assert.Equal(t, LayoutV2.DataOffset, end)
}

func TestLayoutV2FieldOrder(t *testing.T) {
	l := LayoutV2
	assert.Less(t, l.HeaderOffset, l.CMRLatOffset)
	assert.Less(t, l.CMRLatOffset, l.DateOffset)
	assert.Less(t, l.DateOffset, l.CountsOffset)
	assert.Less(t, l.CountsOffset, l.ZUnitsOffset)
	assert.Less(t, l.ZUnitsOffset, l.TrianglesOffset)
	assert.Less(t, l.TrianglesOffset, l.SourceOffset)
	assert.Less(t, l.SourceOffset, l.MetadataOffset)
	assert.Less(t, l.MetadataOffset, l.DataOffset)
}
