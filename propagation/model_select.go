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

import "github.com/rfplan/propengine/logger"

// SelectModel picks the base-loss model to use for a link, given an
// obstacle presence flag, frequency, distance and ground type. forced
// overrides the automatic choice unless it is ModelAuto (or empty).
//
// Priority order, first match wins:
//  1. obstacle present and f >= 30 MHz  -> ITU_P526
//  2. f < 30 MHz                        -> FSPL
//  3. f <= 1500 MHz, built-up ground, d >= 1 km -> OKUMURA_HATA
//  4. f <= 3000 MHz                     -> ITU_P1546
//  5. otherwise                         -> FSPL
func SelectModel(forced Model, obstaclePresent bool, freqMhz, distKm float64, groundType GroundType) Model {
	if forced != "" && forced != ModelAuto {
		if forced == ModelITUP452 {
			// ITU_P452 is reserved: no implementation exists yet. Rather than
			// reject the request outright, fall back to FSPL and say so.
			logger.Warnf("ITU_P452 requested but not implemented, falling back to FSPL")
			return ModelFSPL
		}
		return forced
	}

	if obstaclePresent && freqMhz >= 30 {
		return ModelITUP526
	}
	if freqMhz < 30 {
		return ModelFSPL
	}
	if freqMhz <= 1500 && isBuiltUp(groundType) && distKm >= 1 {
		return ModelOkumuraHata
	}
	if freqMhz <= 3000 {
		return ModelITUP1546
	}
	return ModelFSPL
}

func isBuiltUp(g GroundType) bool {
	switch g {
	case GroundSuburban, GroundUrban, GroundDenseUrban:
		return true
	default:
		return false
	}
}
