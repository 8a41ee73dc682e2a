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

// oxygenSpecificAttenuation approximates the ITU-R P.676 oxygen component
// (dB/km) of atmospheric gaseous attenuation, as a function of frequency (GHz).
func oxygenSpecificAttenuation(fGhz float64) float64 {
	switch {
	case fGhz < 50:
		return 7.19e-3
	case fGhz < 57:
		// linear rise toward the ~14.5 dB/km peak band
		return 7.19e-3 + (14.5-7.19e-3)*(fGhz-50)/7
	case fGhz <= 63:
		return 14.5
	case fGhz < 100:
		// Gaussian decay from the 57-63 GHz plateau back toward the 0.05 floor
		sigma := 12.0
		return 0.05 + (14.5-0.05)*math.Exp(-math.Pow(fGhz-63, 2)/(2*sigma*sigma))
	default:
		return 0.05
	}
}

// waterVapourSpecificAttenuation approximates the ITU-R P.676 water-vapour
// component (dB/km), standard atmosphere (~7.5 g/m^3), as a function of
// frequency (GHz).
func waterVapourSpecificAttenuation(fGhz float64) float64 {
	const resonanceGhz = 22.235
	const sharpResonanceGhz = 183.310
	switch {
	case fGhz < 1:
		return 0
	case fGhz < resonanceGhz:
		return 0.18 * (fGhz - 1) / (resonanceGhz - 1)
	case fGhz < 100:
		// moderate plateau between the 22 GHz and 183 GHz resonances
		return 0.18 + (1.0-0.18)*(fGhz-resonanceGhz)/(100-resonanceGhz)
	case fGhz < 183:
		return 1.0 + (5.0-1.0)*(fGhz-100)/(183-100)
	default:
		sigma := 1.5
		peak := 30.0
		return 0.5 + (peak-0.5)*math.Exp(-math.Pow(fGhz-sharpResonanceGhz, 2)/(2*sigma*sigma))
	}
}

// SpecificGasAttenuation returns gamma(f), the combined oxygen + water
// vapour specific attenuation (dB/km) at frequency freqMhz, per ITU-R P.676.
func SpecificGasAttenuation(freqMhz float64) float64 {
	if freqMhz <= 0 {
		return 0
	}
	fGhz := freqMhz / 1000
	return oxygenSpecificAttenuation(fGhz) + waterVapourSpecificAttenuation(fGhz)
}

// GasAbsorption returns the total gaseous absorption (dB) over distKm at
// freqMhz. Scales linearly with distance by construction.
func GasAbsorption(distKm, freqMhz float64) float64 {
	if distKm <= 0 || freqMhz <= 0 {
		return 0
	}
	return SpecificGasAttenuation(freqMhz) * distKm
}
