package propagation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFiniteRejectsNaNAndInf(t *testing.T) {
	assert.Error(t, checkFinite("x", math.NaN()))
	assert.Error(t, checkFinite("x", math.Inf(1)))
	assert.NoError(t, checkFinite("x", 1.0))
}

func TestValidateLinkInputsRejectsInvertedEquipmentRange(t *testing.T) {
	from := GeoPoint{LatDeg: 0, LngDeg: 0}
	to := GeoPoint{LatDeg: 1, LngDeg: 1}
	link := RadioLinkInput{FrequencyMhz: 144, BandwidthKhz: 12.5, TxPowerW: 5}
	equip := &RadioEquipment{FreqMinMhz: 200, FreqMaxMhz: 100, MaxPowerW: 5}
	err := validateLinkInputs(from, to, link, equip, nil, nil)
	assert.Error(t, err)
	assert.True(t, IsContractError(err))
}

func TestValidateLinkInputsRejectsNegativeRainRate(t *testing.T) {
	from := GeoPoint{LatDeg: 0, LngDeg: 0}
	to := GeoPoint{LatDeg: 1, LngDeg: 1}
	link := RadioLinkInput{FrequencyMhz: 144, BandwidthKhz: 12.5, TxPowerW: 5}
	terrain := &TerrainProfile{RainRateMmH: -1}
	err := validateLinkInputs(from, to, link, nil, nil, terrain)
	assert.Error(t, err)
	assert.True(t, IsContractError(err))
}

func TestValidateLinkInputsAcceptsWellFormedInputs(t *testing.T) {
	from := GeoPoint{LatDeg: 0, LngDeg: 0}
	to := GeoPoint{LatDeg: 1, LngDeg: 1}
	link := RadioLinkInput{FrequencyMhz: 144, BandwidthKhz: 12.5, TxPowerW: 5}
	assert.NoError(t, validateLinkInputs(from, to, link, nil, nil, nil))
}
