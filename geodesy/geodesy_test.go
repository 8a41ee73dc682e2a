package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceCoincidentIsZero(t *testing.T) {
	p := Point{LatDeg: 59.33, LngDeg: 18.07}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceSymmetric(t *testing.T) {
	a := Point{LatDeg: 59.33, LngDeg: 18.07}
	b := Point{LatDeg: 58.90, LngDeg: 17.80}
	d1 := DistanceKm(a, b)
	d2 := DistanceKm(b, a)
	assert.Less(t, math.Abs(d1-d2), 1e-9)
}

func TestDistanceStockholmScale(t *testing.T) {
	a := Point{LatDeg: 59.33, LngDeg: 18.07}
	b := Point{LatDeg: 59.36, LngDeg: 18.04}
	d := DistanceKm(a, b)
	assert.InDelta(t, 3.5, d, 0.1)
}

func TestBearingInRange(t *testing.T) {
	a := Point{LatDeg: 59.33, LngDeg: 18.07}
	b := Point{LatDeg: 59.36, LngDeg: 18.04}
	brg := BearingDeg(a, b)
	assert.GreaterOrEqual(t, brg, 0.0)
	assert.Less(t, brg, 360.0)
}

func TestBearingNorth(t *testing.T) {
	a := Point{LatDeg: 0, LngDeg: 0}
	b := Point{LatDeg: 1, LngDeg: 0}
	brg := BearingDeg(a, b)
	assert.InDelta(t, 0.0, brg, 1e-6)
}
