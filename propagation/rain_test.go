package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRainAttenuationZeroBelowOneGHz(t *testing.T) {
	assert.Equal(t, 0.0, RainAttenuation(10, 900, 50))
}

func TestRainAttenuationZeroWithNoRain(t *testing.T) {
	assert.Equal(t, 0.0, RainAttenuation(10, 10000, 0))
}

func TestRainAttenuationMonotonicInRainRate(t *testing.T) {
	low := RainAttenuation(10, 10000, 5)
	high := RainAttenuation(10, 10000, 50)
	assert.Greater(t, high, low)
}

func TestRainAttenuationSubLinearInDistance(t *testing.T) {
	a10 := RainAttenuation(10, 10000, 50)
	a20 := RainAttenuation(20, 10000, 50)
	assert.Greater(t, a20, a10)
	assert.Less(t, a20, 2*a10)
}

func TestRainKAlphaClampsAtTableEndpoints(t *testing.T) {
	kLow, aLow := rainKAlpha(0.5)
	assert.Equal(t, rainTable[0].k, kLow)
	assert.Equal(t, rainTable[0].alpha, aLow)

	kHigh, aHigh := rainKAlpha(150)
	assert.Equal(t, rainTable[len(rainTable)-1].k, kHigh)
	assert.Equal(t, rainTable[len(rainTable)-1].alpha, aHigh)
}
