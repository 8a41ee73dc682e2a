package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClutterLossSeaIsZero(t *testing.T) {
	assert.Equal(t, 0.0, ClutterLoss(GroundSea, 400))
}

func TestClutterLossOrderingByDensity(t *testing.T) {
	suburban := ClutterLoss(GroundSuburban, 400)
	urban := ClutterLoss(GroundUrban, 400)
	dense := ClutterLoss(GroundDenseUrban, 400)
	assert.Less(t, suburban, urban)
	assert.Less(t, urban, dense)
}

func TestClutterLossUnknownGroundTypeFallsBack(t *testing.T) {
	assert.Equal(t, 1.0, ClutterLoss(GroundType("BOGUS"), 400))
}
