package petragrd

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVRectangular(t *testing.T) {
	g, err := Read(rectFile().reader())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(g, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, []string{"x", "y", "z"}, records[0])
	assert.Equal(t, []string{"100", "200", "0"}, records[1])
	assert.Equal(t, []string{"102", "200", "2"}, records[3])
	assert.Equal(t, []string{"102", "201", "5"}, records[6])
}

func TestWriteCSVTriangular(t *testing.T) {
	g, err := Read(triFile().reader())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(g, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, []string{"triangle", "vertex", "x", "y", "z"}, records[0])
	assert.Equal(t, []string{"0", "0", "0", "3", "6"}, records[1])
	assert.Equal(t, []string{"1", "2", "11", "14", "17"}, records[6])
}

func TestWriteCSVNoData(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&Grid{}, &buf)
	var unsupported UnsupportedError
	assert.ErrorAs(t, err, &unsupported)
	assert.Zero(t, buf.Len())
}
