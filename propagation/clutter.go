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

// ClutterLoss returns the categorical median clutter loss (dB), per
// ITU-R P.2108, for the given ground type at freqMhz. Only FOREST and the
// three built-up categories vary with frequency.
func ClutterLoss(groundType GroundType, freqMhz float64) float64 {
	fGhz := freqMhz / 1000
	switch groundType {
	case GroundSea:
		return 0
	case GroundCoast:
		return 0.5
	case GroundOpenLand:
		return 1.0
	case GroundFarmland:
		return 2.0
	case GroundForest:
		return math.Min(15, 5+4*math.Log10(math.Max(fGhz, 0.03)/0.03))
	case GroundSuburban:
		return 6 + 1.5*math.Log10(math.Max(fGhz, 0.1)/0.1)
	case GroundUrban:
		return 12 + 2*math.Log10(math.Max(fGhz, 0.1)/0.1)
	case GroundDenseUrban:
		return 20 + 3*math.Log10(math.Max(fGhz, 0.1)/0.1)
	default:
		return 1.0
	}
}
