// Copyright (c) 2023, The OTNS Authors.
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

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rfplan/propengine/propagation"
)

// terrainFile is the on-disk shape of a terrain/atmospheric profile preset,
// loaded with --terrain-file. Its fields map one to one onto TerrainProfile,
// with snake_case YAML keys.
type terrainFile struct {
	Type                  string   `yaml:"type"`
	GroundType            string   `yaml:"ground_type"`
	ClimateZone           string   `yaml:"climate_zone"`
	Vegetation            string   `yaml:"vegetation"`
	AntennaHeightTxM      float64  `yaml:"antenna_height_tx_m"`
	AntennaHeightRxM      float64  `yaml:"antenna_height_rx_m"`
	ElevationTxM          float64  `yaml:"elevation_tx_m"`
	ElevationRxM          float64  `yaml:"elevation_rx_m"`
	ObstaclePeakElevM     *float64 `yaml:"obstacle_peak_elev_m,omitempty"`
	ObstacleDistFromTxKm  *float64 `yaml:"obstacle_dist_from_tx_km,omitempty"`
	RainRateMmH           float64  `yaml:"rain_rate_mm_h"`
	LiquidWaterContentGM3 float64  `yaml:"liquid_water_content_g_m3"`
}

func (f terrainFile) toProfile() propagation.TerrainProfile {
	return propagation.TerrainProfile{
		Type:                  propagation.TerrainType(f.Type),
		GroundType:            propagation.GroundType(f.GroundType),
		ClimateZone:           propagation.ClimateZone(f.ClimateZone),
		Vegetation:            propagation.Vegetation(f.Vegetation),
		AntennaHeightTxM:      f.AntennaHeightTxM,
		AntennaHeightRxM:      f.AntennaHeightRxM,
		ElevationTxM:          f.ElevationTxM,
		ElevationRxM:          f.ElevationRxM,
		ObstaclePeakElevM:     f.ObstaclePeakElevM,
		ObstacleDistFromTxKm:  f.ObstacleDistFromTxKm,
		RainRateMmH:           f.RainRateMmH,
		LiquidWaterContentGM3: f.LiquidWaterContentGM3,
	}
}

var (
	fromLat, fromLng float64
	toLat, toLng     float64
	frequencyMhz     float64
	bandwidthKhz     float64
	txPowerW         float64
	txGainDbi        float64
	rxGainDbi        float64
	rxSensitivityDbm float64
	forceModel       string
	terrainFilePath  string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute a link budget between two endpoints",
	RunE:  runCompute,
}

func init() {
	f := computeCmd.Flags()
	f.Float64Var(&fromLat, "from-lat", 0, "origin latitude (decimal degrees)")
	f.Float64Var(&fromLng, "from-lng", 0, "origin longitude (decimal degrees)")
	f.Float64Var(&toLat, "to-lat", 0, "destination latitude (decimal degrees)")
	f.Float64Var(&toLng, "to-lng", 0, "destination longitude (decimal degrees)")
	f.Float64Var(&frequencyMhz, "freq-mhz", 145.5, "link frequency (MHz)")
	f.Float64Var(&bandwidthKhz, "bw-khz", 12.5, "link bandwidth (kHz)")
	f.Float64Var(&txPowerW, "tx-power-w", 5, "transmit power (W)")
	f.Float64Var(&txGainDbi, "tx-gain-dbi", propagation.DefaultAntennaGainDbi, "transmit antenna gain (dBi)")
	f.Float64Var(&rxGainDbi, "rx-gain-dbi", propagation.DefaultAntennaGainDbi, "receive antenna gain (dBi)")
	f.Float64Var(&rxSensitivityDbm, "rx-sensitivity-dbm", propagation.DefaultRxSensitivityDbm, "receiver sensitivity (dBm)")
	f.StringVar(&forceModel, "model", "", "force a propagation model (FSPL, ITU_P1546, ITU_P526, OKUMURA_HATA); default AUTO")
	f.StringVar(&terrainFilePath, "terrain-file", "", "path to a YAML terrain/atmospheric profile")
}

func runCompute(cmd *cobra.Command, args []string) error {
	from := propagation.GeoPoint{LatDeg: fromLat, LngDeg: fromLng}
	to := propagation.GeoPoint{LatDeg: toLat, LngDeg: toLng}
	link := propagation.RadioLinkInput{FrequencyMhz: frequencyMhz, BandwidthKhz: bandwidthKhz, TxPowerW: txPowerW}

	equipFrom := &propagation.RadioEquipment{
		FreqMinMhz: frequencyMhz, FreqMaxMhz: frequencyMhz,
		MaxPowerW: txPowerW, AntennaGainDbi: txGainDbi, RxSensitivityDbm: rxSensitivityDbm,
	}
	equipTo := &propagation.RadioEquipment{
		FreqMinMhz: frequencyMhz, FreqMaxMhz: frequencyMhz,
		MaxPowerW: txPowerW, AntennaGainDbi: rxGainDbi, RxSensitivityDbm: rxSensitivityDbm,
	}

	var terrain *propagation.TerrainProfile
	if terrainFilePath != "" {
		profile, err := loadTerrainFile(terrainFilePath)
		if err != nil {
			return errors.Wrap(err, "loading terrain file")
		}
		terrain = &profile
	}

	model := propagation.Model(forceModel)
	if model == "" {
		model = propagation.ModelAuto
	}

	budget, err := propagation.ComputeLinkBudget(from, to, link, equipFrom, equipTo, terrain, model)
	if err != nil {
		return errors.Wrap(err, "computing link budget")
	}

	printBudget(budget)
	return nil
}

func loadTerrainFile(path string) (propagation.TerrainProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return propagation.TerrainProfile{}, err
	}
	var f terrainFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return propagation.TerrainProfile{}, err
	}
	return f.toProfile(), nil
}

func printBudget(b propagation.LinkBudget) {
	fmt.Printf("model:                  %s\n", b.Model)
	fmt.Printf("distance_km:            %.3f\n", b.DistanceKm)
	fmt.Printf("base_loss_db:           %.2f\n", b.BaseLossDb)
	fmt.Printf("diffraction_loss_db:    %.2f\n", b.DiffractionLossDb)
	fmt.Printf("gas_absorption_db:      %.2f\n", b.GasAbsorptionDb)
	fmt.Printf("rain_attenuation_db:    %.2f\n", b.RainAttenuationDb)
	fmt.Printf("cloud_fog_atten_db:     %.2f\n", b.CloudFogAttenuationDb)
	fmt.Printf("clutter_loss_db:        %.2f\n", b.ClutterLossDb)
	fmt.Printf("received_power_dbm:     %.2f\n", b.ReceivedPowerDbm)
	fmt.Printf("link_margin_db:         %.2f\n", b.LinkMarginDb)
	fmt.Printf("feasible:               %v\n", b.Feasible)
	fmt.Printf("fresnel_clearance:      %.2f\n", b.FresnelClearanceFraction)
	fmt.Printf("quality:                %d (%s) availability=%.4f snr=%.2fdB\n",
		b.ConnectionQuality.Score, b.ConnectionQuality.Label, b.ConnectionQuality.Availability, b.ConnectionQuality.SnrDb)
}
