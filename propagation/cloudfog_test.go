package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudFogZeroBelow10GHz(t *testing.T) {
	assert.Equal(t, 0.0, CloudFogAttenuation(10, 9000, 0.5))
}

func TestCloudFogZeroWithNoWaterContent(t *testing.T) {
	assert.Equal(t, 0.0, CloudFogAttenuation(10, 30000, 0))
}

func TestCloudFogIncreasesWithWaterContent(t *testing.T) {
	low := CloudFogAttenuation(10, 30000, 0.1)
	high := CloudFogAttenuation(10, 30000, 1.0)
	assert.Greater(t, high, low)
}

func TestCloudFogScalesLinearlyWithDistance(t *testing.T) {
	a10 := CloudFogAttenuation(10, 30000, 0.5)
	a20 := CloudFogAttenuation(20, 30000, 0.5)
	assert.InDelta(t, 2*a10, a20, 1e-9)
}
