package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestITUP1546FallsBackToFSPLOutsideValidRange(t *testing.T) {
	assert.Equal(t, FSPLDb(10, 20), ITUP1546Loss(10, 20, TerrainFlat, 10))
	assert.Equal(t, FSPLDb(10, 4000), ITUP1546Loss(10, 4000, TerrainFlat, 10))
}

func TestITUP1546ExponentFlatVsHilly(t *testing.T) {
	flat := ITUP1546Loss(20, 200, TerrainFlat, 10)
	hilly := ITUP1546Loss(20, 200, TerrainHilly, 10)
	assert.Less(t, flat, hilly)
}

func TestP1546ExponentBranches(t *testing.T) {
	assert.Equal(t, 3.0, p1546Exponent(TerrainFlat, 200))
	assert.Equal(t, 3.5, p1546Exponent(TerrainHilly, 200))
	assert.Equal(t, 3.5, p1546Exponent(TerrainFlat, 500))
	assert.Equal(t, 4.0, p1546Exponent(TerrainMountainous, 500))
}
