package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTerrainDefaultsNilReturnsDefaults(t *testing.T) {
	merged := MergeTerrainDefaults(nil)
	assert.Equal(t, defaultTerrainProfile, merged)
}

func TestMergeTerrainDefaultsPartialOverride(t *testing.T) {
	partial := &TerrainProfile{GroundType: GroundUrban}
	merged := MergeTerrainDefaults(partial)
	assert.Equal(t, GroundUrban, merged.GroundType)
	assert.Equal(t, TerrainFlat, merged.Type)
	assert.Equal(t, DefaultAntennaHeightM, merged.AntennaHeightTxM)
}

func TestMergeTerrainDefaultsObstacleRequiresBothFields(t *testing.T) {
	peak := 100.0
	partial := &TerrainProfile{ObstaclePeakElevM: &peak}
	merged := MergeTerrainDefaults(partial)
	assert.Nil(t, merged.ObstacleDistFromTxKm)
	assert.Nil(t, merged.ObstaclePeakElevM)
}

func TestEquipmentOrDefaultNil(t *testing.T) {
	gain, rxSens := equipmentOrDefault(nil)
	assert.Equal(t, DefaultAntennaGainDbi, gain)
	assert.Equal(t, DefaultRxSensitivityDbm, rxSens)
}

func TestEquipmentOrDefaultSupplied(t *testing.T) {
	e := &RadioEquipment{AntennaGainDbi: 9, RxSensitivityDbm: -105}
	gain, rxSens := equipmentOrDefault(e)
	assert.Equal(t, 9.0, gain)
	assert.Equal(t, -105.0, rxSens)
}
