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

package propagation

import (
	"github.com/rfplan/propengine/geodesy"
	"github.com/rfplan/propengine/logger"
	"github.com/rfplan/propengine/units"
)

// ComputeLinkBudget is the engine's single principal entry point. It takes
// two endpoints, a radio link description, optional per-terminal equipment
// and an optional terrain/atmospheric profile, and returns a fully broken
// down link budget plus a composite connection-quality score.
//
// The function is pure: given the same inputs it always returns the same
// output, performs no I/O apart from one Debug-level log line, and is safe
// to call concurrently from any number of goroutines.
func ComputeLinkBudget(from, to GeoPoint, link RadioLinkInput, equipFrom, equipTo *RadioEquipment, terrain *TerrainProfile, forceModel Model) (LinkBudget, error) {
	if err := validateLinkInputs(from, to, link, equipFrom, equipTo, terrain); err != nil {
		return LinkBudget{}, err
	}

	distKm := geodesy.DistanceKm(from, to)
	t := MergeTerrainDefaults(terrain)

	txGainDbi, _ := equipmentOrDefault(equipFrom)
	rxGainDbi, rxSensitivityDbm := equipmentOrDefault(equipTo)

	_, obstaclePresent := resolveObstacle(&t, distKm)
	model := SelectModel(forceModel, obstaclePresent, link.FrequencyMhz, distKm, t.GroundType)

	var baseLossDb, diffractionLossDb, clutterLossDb float64
	switch model {
	case ModelITUP526:
		baseLossDb = FSPLDb(distKm, link.FrequencyMhz)
		diffractionLossDb = KnifeEdgeDiffraction(distKm, link.FrequencyMhz, &t)
	case ModelOkumuraHata:
		baseLossDb = OkumuraHataLoss(distKm, link.FrequencyMhz, t.GroundType, t.AntennaHeightTxM, t.AntennaHeightRxM)
	case ModelITUP1546:
		baseLossDb = ITUP1546Loss(distKm, link.FrequencyMhz, t.Type, t.AntennaHeightTxM)
	default: // ModelFSPL, and the ITU_P452 fallback already resolved to it
		baseLossDb = FSPLDb(distKm, link.FrequencyMhz)
	}
	// Clutter loss is a correction applied on top of a model that does not
	// already account for ground clutter in its own empirical fit.
	if model != ModelOkumuraHata {
		clutterLossDb = ClutterLoss(t.GroundType, link.FrequencyMhz)
	}

	gasAbsorptionDb := GasAbsorption(distKm, link.FrequencyMhz)
	rainAttenuationDb := RainAttenuation(distKm, link.FrequencyMhz, t.RainRateMmH)
	cloudFogAttenuationDb := CloudFogAttenuation(distKm, link.FrequencyMhz, t.LiquidWaterContentGM3)

	txPowerDbm := units.WattToDbm(link.TxPowerW)
	totalLossDb := baseLossDb + diffractionLossDb + gasAbsorptionDb + rainAttenuationDb + cloudFogAttenuationDb + clutterLossDb
	receivedPowerDbm := txPowerDbm + txGainDbi + rxGainDbi - totalLossDb
	linkMarginDb := receivedPowerDbm - rxSensitivityDbm
	feasible := linkMarginDb > 0

	clearanceFraction := FresnelClearance(distKm, link.FrequencyMhz, &t)

	quality := connectionQuality(linkMarginDb, clearanceFraction, rainAttenuationDb, cloudFogAttenuationDb, txGainDbi, rxGainDbi, receivedPowerDbm, link.BandwidthKhz)

	logger.Debugf("link budget: model=%s dist=%.2fkm loss=%.2fdB margin=%.2fdB feasible=%v",
		model, distKm, totalLossDb, linkMarginDb, feasible)

	return LinkBudget{
		TxPowerDbm:            paround(txPowerDbm),
		TxGainDbi:             txGainDbi,
		RxGainDbi:             rxGainDbi,
		BaseLossDb:            paround(baseLossDb),
		DiffractionLossDb:     paround(diffractionLossDb),
		GasAbsorptionDb:       paround(gasAbsorptionDb),
		RainAttenuationDb:     paround(rainAttenuationDb),
		CloudFogAttenuationDb: paround(cloudFogAttenuationDb),
		ClutterLossDb:         paround(clutterLossDb),
		ReceivedPowerDbm:      paround(receivedPowerDbm),
		RxSensitivityDbm:      rxSensitivityDbm,
		LinkMarginDb:          paround(linkMarginDb),
		DistanceKm:            paround(distKm),
		FresnelClearanceFraction: clearanceFraction,
		Feasible:              feasible,
		Model:                 model,
		ConnectionQuality:     quality,
	}, nil
}
