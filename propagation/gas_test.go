package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGasAbsorptionZeroForNonPositiveInputs(t *testing.T) {
	assert.Equal(t, 0.0, GasAbsorption(0, 1000))
	assert.Equal(t, 0.0, GasAbsorption(10, 0))
}

func TestGasAbsorptionScalesLinearlyWithDistance(t *testing.T) {
	a10 := GasAbsorption(10, 60000)
	a20 := GasAbsorption(20, 60000)
	assert.InDelta(t, 2*a10, a20, 1e-9)
}

func TestSpecificGasAttenuationOxygenPeakNear60GHz(t *testing.T) {
	low := SpecificGasAttenuation(30000)
	peak := SpecificGasAttenuation(60000)
	assert.Greater(t, peak, low)
}

func TestSpecificGasAttenuationZeroForNonPositiveFreq(t *testing.T) {
	assert.Equal(t, 0.0, SpecificGasAttenuation(0))
}
