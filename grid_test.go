package petragrd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatticeCoordinates(t *testing.T) {
	g := &Grid{XMin: 100, XStep: 2, YMin: 50, YStep: 0.5}
	assert.Equal(t, 100.0, g.XAt(0))
	assert.Equal(t, 106.0, g.XAt(3))
	assert.Equal(t, 50.0, g.YAt(0))
	assert.Equal(t, 51.5, g.YAt(3))
}

func TestIsTriangular(t *testing.T) {
	assert.False(t, (&Grid{}).IsTriangular())
	assert.True(t, (&Grid{NTriangles: 1}).IsTriangular())
}

func TestUnitOfMeasureString(t *testing.T) {
	assert.Equal(t, "feet", UnitFeet.String())
	assert.Equal(t, "meters", UnitMeters.String())
	assert.Equal(t, "unknown", UnitOfMeasure(7).String())
}
