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

// OkumuraHataLoss computes the empirical Okumura-Hata urban/suburban path
// loss (dB), valid for 150-1500 MHz. Falls back to FSPL when the distance
// or frequency is outside the model's valid range.
func OkumuraHataLoss(distKm, freqMhz float64, groundType GroundType, hTxM, hRxM float64) float64 {
	if distKm < 0.1 || freqMhz < 150 || freqMhz > 1500 {
		return FSPLDb(distKm, freqMhz)
	}
	hte := math.Max(hTxM, 1)
	hre := math.Max(hRxM, 0.5)
	logF := math.Log10(freqMhz)

	a := (1.1*logF-0.7)*hre - (1.56*logF - 0.8)
	lb := 69.55 + 26.16*logF - 13.82*math.Log10(hte) - a + (44.9-6.55*math.Log10(hte))*math.Log10(distKm)

	switch groundType {
	case GroundUrban, GroundDenseUrban:
		return lb
	case GroundOpenLand, GroundFarmland:
		return lb - 4.78*logF*logF + 18.33*logF - 40.94
	default: // SUBURBAN and any other fallback
		return lb - 2*math.Pow(math.Log10(freqMhz/28), 2) - 5.4
	}
}
