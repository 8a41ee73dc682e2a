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

// rainCoeffPoint is a single tabulated (frequency, k, alpha) point from
// ITU-R P.838-3 Table 1, horizontal polarization.
type rainCoeffPoint struct {
	fGhz, k, alpha float64
}

// rainTable holds the 18 tabulated GHz points used to interpolate the
// specific rain attenuation coefficients k(f) and alpha(f). Kept as a
// static, compile-time table per the design notes: log-linear
// interpolation in frequency is mandatory here, plain linear
// interpolation misses the low-GHz coefficients by orders of magnitude.
var rainTable = []rainCoeffPoint{
	{1, 0.0000387, 0.912},
	{2, 0.0001540, 0.963},
	{4, 0.0006500, 1.121},
	{6, 0.0017500, 1.308},
	{7, 0.0030100, 1.332},
	{8, 0.0045400, 1.327},
	{10, 0.0101000, 1.276},
	{12, 0.0188000, 1.217},
	{15, 0.0367000, 1.154},
	{20, 0.0751000, 1.099},
	{25, 0.1240000, 1.061},
	{30, 0.1870000, 1.021},
	{35, 0.2630000, 0.979},
	{40, 0.3500000, 0.939},
	{45, 0.4420000, 0.903},
	{50, 0.5360000, 0.873},
	{70, 0.8510000, 0.826},
	{100, 1.1200000, 0.793},
}

// rainKAlpha interpolates k and alpha at fGhz from rainTable: k log-linearly
// in both f and k, alpha linearly in log f. Clamps to the table's endpoints.
func rainKAlpha(fGhz float64) (k, alpha float64) {
	t := rainTable
	if fGhz <= t[0].fGhz {
		return t[0].k, t[0].alpha
	}
	if fGhz >= t[len(t)-1].fGhz {
		return t[len(t)-1].k, t[len(t)-1].alpha
	}
	for i := 1; i < len(t); i++ {
		if fGhz <= t[i].fGhz {
			lo, hi := t[i-1], t[i]
			logF := math.Log10(fGhz)
			logFLo, logFHi := math.Log10(lo.fGhz), math.Log10(hi.fGhz)
			frac := (logF - logFLo) / (logFHi - logFLo)

			logKLo, logKHi := math.Log10(lo.k), math.Log10(hi.k)
			k = math.Pow(10, logKLo+frac*(logKHi-logKLo))
			alpha = lo.alpha + frac*(hi.alpha-lo.alpha)
			return k, alpha
		}
	}
	return t[len(t)-1].k, t[len(t)-1].alpha // unreachable
}

// RainAttenuation returns the rain attenuation (dB) over distKm at freqMhz
// for rain rate rainRateMmH (mm/h), per ITU-R P.838. Returns 0 when there is
// no rain or the frequency is below 1 GHz (the model is not meaningful there).
func RainAttenuation(distKm, freqMhz, rainRateMmH float64) float64 {
	if rainRateMmH <= 0 || freqMhz < 1000 || distKm <= 0 {
		return 0
	}
	fGhz := freqMhz / 1000
	k, alpha := rainKAlpha(fGhz)
	gammaR := k * math.Pow(rainRateMmH, alpha)
	r := 1 / (1 + 0.045*distKm)
	return gammaR * distKm * r
}
