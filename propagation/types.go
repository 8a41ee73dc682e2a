// Copyright (c) 2022, The OTNS Authors.
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

// Package propagation implements the ITU-aware link-budget engine: a
// pure, stateless function library that picks among several
// internationally standardised propagation models and combines their
// outputs into one link budget and connection-quality score. Nothing
// in this package retains state across calls; its only I/O is diagnostic
// logging through the logger package.
package propagation

import "github.com/rfplan/propengine/geodesy"

// GeoPoint is a WGS84-interpreted geographic coordinate evaluated on a sphere.
type GeoPoint = geodesy.Point

// TerrainType categorises the general shape of the terrain along the path.
type TerrainType string

const (
	TerrainFlat         TerrainType = "FLAT"
	TerrainHilly        TerrainType = "HILLY"
	TerrainMountainous  TerrainType = "MOUNTAINOUS"
	TerrainValley       TerrainType = "VALLEY"
)

// GroundType categorises the clutter environment near the terminals.
type GroundType string

const (
	GroundSea         GroundType = "SEA"
	GroundCoast       GroundType = "COAST"
	GroundOpenLand    GroundType = "OPEN_LAND"
	GroundFarmland    GroundType = "FARMLAND"
	GroundForest      GroundType = "FOREST"
	GroundSuburban    GroundType = "SUBURBAN"
	GroundUrban       GroundType = "URBAN"
	GroundDenseUrban  GroundType = "DENSE_URBAN"
)

// ClimateZone is reserved: preserved through the API for future P.1546/P.840
// temperature corrections, but no current model consults it.
type ClimateZone string

const (
	ClimateArctic      ClimateZone = "ARCTIC"
	ClimateTemperate   ClimateZone = "TEMPERATE"
	ClimateSubtropical ClimateZone = "SUBTROPICAL"
	ClimateTropical    ClimateZone = "TROPICAL"
	ClimateArid        ClimateZone = "ARID"
)

// Vegetation is reserved, same status as ClimateZone.
type Vegetation string

const (
	VegetationNone         Vegetation = "NONE"
	VegetationCrops        Vegetation = "CROPS"
	VegetationSparseTrees  Vegetation = "SPARSE_TREES"
	VegetationForest       Vegetation = "FOREST"
	VegetationJungle       Vegetation = "JUNGLE"
)

// Model identifies which base-loss propagation model produced base_loss_db.
// AUTO is only ever a request-side value; ComputeLinkBudget never returns it.
type Model string

const (
	ModelFSPL         Model = "FSPL"
	ModelITUP452      Model = "ITU_P452" // reserved, see SelectModel and the design notes
	ModelITUP1546     Model = "ITU_P1546"
	ModelITUP526      Model = "ITU_P526"
	ModelOkumuraHata  Model = "OKUMURA_HATA"
	ModelAuto         Model = "AUTO"
)

// RadioEquipment describes one terminal's radio. Equipment is an optional
// input to ComputeLinkBudget; when absent, DefaultAntennaGainDbi and
// DefaultRxSensitivityDbm are substituted.
type RadioEquipment struct {
	FreqMinMhz      float64
	FreqMaxMhz      float64
	MaxPowerW       float64
	RxSensitivityDbm float64
	AntennaGainDbi  float64
}

// Default substitutes used when equipment is not supplied for a terminal.
const (
	DefaultAntennaGainDbi   = 0.0
	DefaultRxSensitivityDbm = -110.0
)

// Validate reports a contract violation on a malformed equipment record.
// FreqMin <= FreqMax and MaxPowerW > 0 are the only hard invariants; an
// inverted frequency range is a caller bug, not a domain sentinel.
func (e RadioEquipment) Validate() error {
	if e.FreqMinMhz > e.FreqMaxMhz {
		return newContractError("freq_min_mhz (%v) > freq_max_mhz (%v)", e.FreqMinMhz, e.FreqMaxMhz)
	}
	if e.MaxPowerW <= 0 {
		return newContractError("max_power_w must be > 0, got %v", e.MaxPowerW)
	}
	return nil
}

// RadioLinkInput is the subset of a planned link relevant to propagation.
// Waveform, timing and routing fields that real links carry are irrelevant
// to the engine and are not modelled here.
type RadioLinkInput struct {
	FrequencyMhz  float64
	BandwidthKhz  float64
	TxPowerW      float64
}

// TerrainProfile describes the geometry, clutter and weather along a path.
// Only the obstacle fields are pointers; for the other fields a zero value
// cannot be told apart from "not set". MergeTerrainDefaults treats empty
// categorical fields and zero antenna heights as unset and substitutes the
// defaults for them.
type TerrainProfile struct {
	Type        TerrainType
	GroundType  GroundType
	ClimateZone ClimateZone
	Vegetation  Vegetation

	AntennaHeightTxM float64
	AntennaHeightRxM float64
	ElevationTxM     float64
	ElevationRxM     float64

	ObstaclePeakElevM        *float64
	ObstacleDistFromTxKm     *float64

	RainRateMmH            float64
	LiquidWaterContentGM3  float64
}

// Defaults merged over a caller-supplied (possibly nil or partial) terrain profile.
const (
	DefaultAntennaHeightM = 2.0
)

// ConnectionQuality is the composite, human-facing summary of a link budget.
type ConnectionQuality struct {
	Score        int
	Label        string
	Color        string
	Availability float64
	SnrDb        float64
}

// LinkBudget is the full result of ComputeLinkBudget: every loss mechanism
// broken out as its own dB-valued field, plus the derived feasibility and
// quality summary.
type LinkBudget struct {
	TxPowerDbm    float64
	TxGainDbi     float64
	RxGainDbi     float64

	BaseLossDb          float64
	DiffractionLossDb   float64
	GasAbsorptionDb     float64
	RainAttenuationDb   float64
	CloudFogAttenuationDb float64
	ClutterLossDb       float64

	ReceivedPowerDbm  float64
	RxSensitivityDbm  float64
	LinkMarginDb      float64

	DistanceKm               float64
	FresnelClearanceFraction float64
	Feasible                 bool
	Model                    Model

	ConnectionQuality ConnectionQuality
}
