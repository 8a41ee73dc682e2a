package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectModelForcedOverridesAutoSelection(t *testing.T) {
	m := SelectModel(ModelFSPL, true, 144, 10, GroundUrban)
	assert.Equal(t, ModelFSPL, m)
}

func TestSelectModelForcedITUP452FallsBackToFSPL(t *testing.T) {
	m := SelectModel(ModelITUP452, false, 144, 10, GroundOpenLand)
	assert.Equal(t, ModelFSPL, m)
}

func TestSelectModelObstacleAboveThresholdUsesDiffraction(t *testing.T) {
	m := SelectModel(ModelAuto, true, 144, 10, GroundOpenLand)
	assert.Equal(t, ModelITUP526, m)
}

func TestSelectModelLowFrequencyUsesFSPL(t *testing.T) {
	m := SelectModel(ModelAuto, false, 20, 100, GroundOpenLand)
	assert.Equal(t, ModelFSPL, m)
}

func TestSelectModelBuiltUpUsesOkumuraHata(t *testing.T) {
	m := SelectModel(ModelAuto, false, 400, 5, GroundUrban)
	assert.Equal(t, ModelOkumuraHata, m)
}

func TestSelectModelBuiltUpButShortDistanceUsesP1546(t *testing.T) {
	m := SelectModel(ModelAuto, false, 400, 0.5, GroundUrban)
	assert.Equal(t, ModelITUP1546, m)
}

func TestSelectModelMidRangeOpenUsesP1546(t *testing.T) {
	m := SelectModel(ModelAuto, false, 400, 5, GroundOpenLand)
	assert.Equal(t, ModelITUP1546, m)
}

func TestSelectModelHighFrequencyFallsBackToFSPL(t *testing.T) {
	m := SelectModel(ModelAuto, false, 10000, 5, GroundOpenLand)
	assert.Equal(t, ModelFSPL, m)
}
