package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffractionLossDeepClearIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DiffractionLoss(-2))
}

func TestDiffractionLossAtZeroNu(t *testing.T) {
	assert.InDelta(t, 6.02, DiffractionLoss(0), 0.01)
}

func TestDiffractionLossContinuousAtBranchBoundary(t *testing.T) {
	below := DiffractionLoss(2.399)
	above := DiffractionLoss(2.401)
	assert.Less(t, abs(above-below), 1.5)
}

func TestDiffractionLossIncreasesWithNu(t *testing.T) {
	prev := DiffractionLoss(-1)
	for _, nu := range []float64{-0.5, 0, 0.5, 1, 1.5, 2, 2.5, 3} {
		cur := DiffractionLoss(nu)
		assert.GreaterOrEqual(t, cur, prev-1e-9)
		prev = cur
	}
}

func TestFresnelParameterDeepClearSentinelOnMissingGeometry(t *testing.T) {
	assert.Equal(t, deepClearNu, FresnelParameter(10, 0, 5, 144))
	assert.Equal(t, deepClearNu, FresnelParameter(10, 5, 0, 144))
	assert.Equal(t, deepClearNu, FresnelParameter(10, 5, 5, 0))
}

func TestKnifeEdgeDiffractionNoObstacleIsDeepClear(t *testing.T) {
	loss := KnifeEdgeDiffraction(10, 144, nil)
	assert.Equal(t, DiffractionLoss(deepClearNu), loss)
}

func TestFresnelClearanceNoObstacleIsFull(t *testing.T) {
	c := FresnelClearance(10, 144, nil)
	assert.Equal(t, 1.0, c)
}

func TestFresnelClearanceObstructedObstacleReducesClearance(t *testing.T) {
	peak := 200.0
	d1 := 5.0
	terrain := &TerrainProfile{
		AntennaHeightTxM:     10,
		AntennaHeightRxM:     10,
		ElevationTxM:         0,
		ElevationRxM:         0,
		ObstaclePeakElevM:    &peak,
		ObstacleDistFromTxKm: &d1,
	}
	c := FresnelClearance(10, 144, terrain)
	assert.Less(t, c, 1.0)
	assert.GreaterOrEqual(t, c, 0.0)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
