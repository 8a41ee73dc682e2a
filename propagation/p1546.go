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

// ITUP1546Loss computes a simplified ITU-R P.1546 path loss (dB), valid for
// 30-3000 MHz. Outside that range it falls back to FSPL. This is a closed-
// form fit, not the full numerical field-strength curve evaluation that the
// real recommendation specifies (explicitly out of scope, see design notes).
func ITUP1546Loss(distKm, freqMhz float64, terrainType TerrainType, hTxM float64) float64 {
	if freqMhz < 30 || freqMhz > 3000 {
		return FSPLDb(distKm, freqMhz)
	}
	n := p1546Exponent(terrainType, freqMhz)
	dEff := math.Max(distKm, 0.01)
	hEff := math.Max(hTxM, 1)
	return FSPLDb(1, freqMhz) + 10*n*math.Log10(dEff) - 20*math.Log10(hEff/10)
}

// p1546Exponent picks the path-loss exponent n used by ITUP1546Loss.
func p1546Exponent(terrainType TerrainType, freqMhz float64) float64 {
	switch {
	case terrainType == TerrainFlat && freqMhz < 300:
		return 3.0
	case freqMhz < 300: // HILLY, MOUNTAINOUS, VALLEY below 300 MHz
		return 3.5
	case terrainType == TerrainFlat: // FLAT at/above 300 MHz
		return 3.5
	default: // non-FLAT at/above 300 MHz
		return 4.0
	}
}
