package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWattToDbmReference(t *testing.T) {
	assert.InDelta(t, 30.0, WattToDbm(1.0), 0.01)
	assert.InDelta(t, 0.0, WattToDbm(0.001), 0.01)
}

func TestThermalNoiseDbmClampsBandwidth(t *testing.T) {
	n1 := ThermalNoiseDbm(0)
	n2 := ThermalNoiseDbm(1)
	assert.Equal(t, n1, n2)
}

func TestThermalNoiseDbmIncreasesWithBandwidth(t *testing.T) {
	n1 := ThermalNoiseDbm(25)
	n2 := ThermalNoiseDbm(500)
	assert.Less(t, n1, n2)
}
