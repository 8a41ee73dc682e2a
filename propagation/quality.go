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
	"math"

	"github.com/rfplan/propengine/units"
)

// availabilitySigmaDb is the standard deviation (dB) of the Gaussian fade
// model used to turn link margin into an availability probability.
const availabilitySigmaDb = 8.0

// connectionQuality computes the composite 0-100 connection quality score,
// its label/color band, availability and SNR for a link.
func connectionQuality(linkMarginDb, clearanceFraction, rainDb, cloudFogDb, txGainDbi, rxGainDbi, receivedPowerDbm, bandwidthKhz float64) ConnectionQuality {
	marginScore := clamp(linkMarginDb/30, 0, 1) * 50
	fresnelScore := clamp(clearanceFraction, 0, 1) * 20
	weatherScore := weatherReliability(rainDb, cloudFogDb) * 20
	gainScore := clamp((txGainDbi+rxGainDbi)/20, 0, 1) * 10

	score := marginScore + fresnelScore + weatherScore + gainScore
	roundedScore := int(math.Round(score))

	if linkMarginDb < 0 {
		cap := 19 + 2*int(math.Round(linkMarginDb))
		roundedScore = clampInt(roundedScore, 0, maxInt(0, cap))
	}
	roundedScore = clampInt(roundedScore, 0, 100)

	label, color := qualityBand(roundedScore)
	availability := 0.5 * (1 + erf(linkMarginDb/(availabilitySigmaDb*math.Sqrt2)))
	snrDb := receivedPowerDbm - units.ThermalNoiseDbm(bandwidthKhz)

	return ConnectionQuality{
		Score:        roundedScore,
		Label:        label,
		Color:        color,
		Availability: availability,
		SnrDb:        snrDb,
	}
}

// weatherReliability folds rain and cloud/fog attenuation into a 0-1
// reliability figure: more weather loss relative to its own scale erodes
// reliability, but never below zero.
func weatherReliability(rainDb, cloudFogDb float64) float64 {
	w := rainDb + cloudFogDb
	denom := math.Max(w+10, 10)
	reliability := 1 - w/denom
	if reliability < 0 {
		reliability = 0
	}
	return reliability
}

func qualityBand(score int) (label, color string) {
	switch {
	case score >= 80:
		return "Excellent", "#2e7d32" // green
	case score >= 60:
		return "Good", "#8bc34a" // light green
	case score >= 40:
		return "Acceptable", "#fdd835" // yellow
	case score >= 20:
		return "Weak", "#fb8c00" // orange
	default:
		return "Insufficient", "#e53935" // red
	}
}

// erf approximates the Gauss error function using the Abramowitz-Stegun
// 5-term rational approximation (max error ~1.5e-7).
func erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)
	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
