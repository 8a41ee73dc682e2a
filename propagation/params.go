// Copyright (c) 2022-2023, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package propagation

// defaultTerrainProfile is the base terrain assumed when the caller supplies
// none, or supplies only some fields: FLAT / OPEN_LAND / TEMPERATE / NONE,
// 2 m antenna heights, sea-level elevations, no rain or cloud water.
var defaultTerrainProfile = TerrainProfile{
	Type:                  TerrainFlat,
	GroundType:            GroundOpenLand,
	ClimateZone:           ClimateTemperate,
	Vegetation:            VegetationNone,
	AntennaHeightTxM:      DefaultAntennaHeightM,
	AntennaHeightRxM:      DefaultAntennaHeightM,
	ElevationTxM:          0,
	ElevationRxM:          0,
	RainRateMmH:           0,
	LiquidWaterContentGM3: 0,
}

// MergeTerrainDefaults layers a possibly-nil, possibly-partial terrain
// profile over defaultTerrainProfile. A nil profile returns the defaults
// unchanged. Empty categorical fields and zero antenna heights are treated
// as unset and take the defaults, so a caller cannot ask for a zero antenna
// height. Elevations, rain rate and liquid water content are copied as
// given (their defaults are 0). The obstacle fields are carried over only
// when both are set.
func MergeTerrainDefaults(t *TerrainProfile) TerrainProfile {
	merged := defaultTerrainProfile
	if t == nil {
		return merged
	}
	if t.Type != "" {
		merged.Type = t.Type
	}
	if t.GroundType != "" {
		merged.GroundType = t.GroundType
	}
	if t.ClimateZone != "" {
		merged.ClimateZone = t.ClimateZone
	}
	if t.Vegetation != "" {
		merged.Vegetation = t.Vegetation
	}
	if t.AntennaHeightTxM != 0 {
		merged.AntennaHeightTxM = t.AntennaHeightTxM
	}
	if t.AntennaHeightRxM != 0 {
		merged.AntennaHeightRxM = t.AntennaHeightRxM
	}
	merged.ElevationTxM = t.ElevationTxM
	merged.ElevationRxM = t.ElevationRxM
	merged.RainRateMmH = t.RainRateMmH
	merged.LiquidWaterContentGM3 = t.LiquidWaterContentGM3

	// An obstacle is only meaningful when both fields are present and the
	// along-path distance is sane; resolveObstacle re-validates the distance
	// against the actual path length, this just carries the raw fields through.
	if t.ObstaclePeakElevM != nil && t.ObstacleDistFromTxKm != nil {
		merged.ObstaclePeakElevM = t.ObstaclePeakElevM
		merged.ObstacleDistFromTxKm = t.ObstacleDistFromTxKm
	}
	return merged
}

// equipmentOrDefault returns the effective antenna gain and rx sensitivity
// for a terminal, substituting the documented defaults when equipment is
// not supplied.
func equipmentOrDefault(e *RadioEquipment) (gainDbi, rxSensitivityDbm float64) {
	if e == nil {
		return DefaultAntennaGainDbi, DefaultRxSensitivityDbm
	}
	return e.AntennaGainDbi, e.RxSensitivityDbm
}
