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

import "math"

// deepClearNu is the sentinel Fresnel-Kirchhoff parameter used when no
// dominant obstacle was supplied: deep in the clear region, J(nu) = 0.
const deepClearNu = -2.0

// obstacleGeometry is the single-dominant-obstacle geometry needed by the
// knife-edge diffraction model, already projected onto the great-circle path.
type obstacleGeometry struct {
	d1Km, d2Km   float64 // obstacle-to-endpoint distances
	heightAboveLosM float64 // obstacle peak elevation above the Tx-Rx sight line
}

// resolveObstacle validates and projects the optional obstacle fields of a
// TerrainProfile into usable geometry. Returns ok=false (no error - this is
// a domain sentinel, not a contract violation) when no obstacle was given,
// or when the supplied along-path distance falls outside (0, distKm).
func resolveObstacle(t *TerrainProfile, distKm float64) (g obstacleGeometry, ok bool) {
	if t == nil || t.ObstaclePeakElevM == nil || t.ObstacleDistFromTxKm == nil {
		return obstacleGeometry{}, false
	}
	d1 := *t.ObstacleDistFromTxKm
	if d1 <= 0 || d1 >= distKm {
		return obstacleGeometry{}, false
	}
	d2 := distKm - d1

	losTxM := t.ElevationTxM + t.AntennaHeightTxM
	losRxM := t.ElevationRxM + t.AntennaHeightRxM
	losAtObstacleM := losTxM + (losRxM-losTxM)*(d1/distKm)

	g = obstacleGeometry{
		d1Km:            d1,
		d2Km:            d2,
		heightAboveLosM: *t.ObstaclePeakElevM - losAtObstacleM,
	}
	return g, true
}

// FresnelParameter computes the Fresnel-Kirchhoff diffraction parameter nu
// for a single dominant obstacle of height h (meters, above the direct
// sight line) at distances d1Km/d2Km from the two endpoints, at frequency
// freqMhz. Returns the deep-clear sentinel (-2) when either distance or the
// frequency is non-positive.
func FresnelParameter(hM, d1Km, d2Km, freqMhz float64) float64 {
	if d1Km <= 0 || d2Km <= 0 || freqMhz <= 0 {
		return deepClearNu
	}
	lambdaM := 300.0 / freqMhz
	d1m := d1Km * 1000
	d2m := d2Km * 1000
	return hM * math.Sqrt(2*(d1m+d2m)/(lambdaM*d1m*d2m))
}

// DiffractionLoss evaluates J(nu), the ITU-R P.526-15 piecewise
// approximation of knife-edge diffraction loss in dB.
func DiffractionLoss(nu float64) float64 {
	switch {
	case nu < -1:
		return 0
	case nu < 0:
		return -20 * math.Log10(0.5-0.62*nu)
	case nu < 1:
		return -20 * math.Log10(0.5*math.Exp(-0.95*nu))
	case nu < 2.4:
		inner := 0.1184 - math.Pow(0.38-0.1*nu, 2)
		if inner < 0 {
			inner = 0
		}
		return -20 * math.Log10(0.4-math.Sqrt(inner))
	default:
		return -20 * math.Log10(0.225/nu)
	}
}

// KnifeEdgeDiffraction computes the full knife-edge diffraction loss (dB)
// for a link, given the optional terrain obstacle. Returns 0 when no
// obstacle is present.
func KnifeEdgeDiffraction(distKm, freqMhz float64, t *TerrainProfile) float64 {
	g, ok := resolveObstacle(t, distKm)
	if !ok {
		return DiffractionLoss(deepClearNu)
	}
	nu := FresnelParameter(g.heightAboveLosM, g.d1Km, g.d2Km, freqMhz)
	return DiffractionLoss(nu)
}

// FresnelClearance returns the fraction (0-1) of the first Fresnel zone that
// is unobstructed at the dominant obstacle's position. Returns 1.0 (full
// clearance) when no obstacle is supplied.
func FresnelClearance(distKm, freqMhz float64, t *TerrainProfile) float64 {
	g, ok := resolveObstacle(t, distKm)
	if !ok {
		return 1.0
	}
	lambdaM := 300.0 / freqMhz
	d1m := g.d1Km * 1000
	d2m := g.d2Km * 1000
	r1 := math.Sqrt(lambdaM * d1m * d2m / (d1m + d2m))
	if r1 <= 0 {
		return 1.0
	}
	// heightAboveLosM = obstaclePeak - losAtObstacle, so losHeight - obstaclePeak = -heightAboveLosM.
	frac := -g.heightAboveLosM/r1 + 1
	return clamp(frac, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
