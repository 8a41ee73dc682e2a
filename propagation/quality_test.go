package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionQualityHighMarginScoresWell(t *testing.T) {
	q := connectionQuality(25, 1.0, 0, 0, 6, 6, -70, 12.5)
	assert.GreaterOrEqual(t, q.Score, 80)
	assert.Equal(t, "Excellent", q.Label)
}

func TestConnectionQualityNegativeMarginCappedLow(t *testing.T) {
	q := connectionQuality(-10, 1.0, 0, 0, 6, 6, -130, 12.5)
	assert.LessOrEqual(t, q.Score, 0)
}

func TestConnectionQualityScoreWithinBounds(t *testing.T) {
	for _, margin := range []float64{-40, -10, -1, 0, 5, 15, 30, 60} {
		q := connectionQuality(margin, 0.5, 2, 1, 3, 3, -90, 25)
		assert.GreaterOrEqual(t, q.Score, 0)
		assert.LessOrEqual(t, q.Score, 100)
	}
}

func TestConnectionQualityAvailabilityMonotonicInMargin(t *testing.T) {
	low := connectionQuality(-10, 1, 0, 0, 0, 0, -100, 12.5)
	high := connectionQuality(10, 1, 0, 0, 0, 0, -80, 12.5)
	assert.Less(t, low.Availability, high.Availability)
}

func TestConnectionQualityAvailabilityAtZeroMarginIsHalf(t *testing.T) {
	q := connectionQuality(0, 1, 0, 0, 0, 0, -100, 12.5)
	assert.InDelta(t, 0.5, q.Availability, 1e-6)
}

func TestErfOddSymmetry(t *testing.T) {
	assert.InDelta(t, -erf(1.3), erf(-1.3), 1e-9)
}

func TestErfSaturatesNearOne(t *testing.T) {
	assert.InDelta(t, 1.0, erf(4), 1e-6)
	assert.InDelta(t, -1.0, erf(-4), 1e-6)
}
