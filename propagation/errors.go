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
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ContractError reports a caller bug: an input that violates one of the
// engine's tighter invariants (inverted frequency range, non-finite values,
// negative rain rate). These are never recoverable internally - there is
// nothing to retry, since every operation here is pure.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string {
	return e.msg
}

func newContractError(format string, args ...interface{}) error {
	return errors.WithStack(&ContractError{msg: fmt.Sprintf(format, args...)})
}

// IsContractError reports whether err (or something it wraps) is a ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

// checkFinite returns a ContractError if v is NaN or +/-Inf.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return newContractError("%s must be finite, got %v", name, v)
	}
	return nil
}

// validateLinkInputs checks the contract-violation category of failures
// described in the engine's error-handling design: an inverted equipment
// frequency range or non-positive equipment power, a non-finite endpoint
// coordinate, link field, rain rate or liquid water content, or a negative
// rain rate. Equipment gains and sensitivities, antenna heights, elevations
// and obstacle fields are not checked for finiteness.
// Domain sentinels (non-positive distance/frequency inside individual loss
// functions, missing terrain/equipment/obstacle) are handled separately by
// each mechanism returning 0 or a documented default - they are not errors.
func validateLinkInputs(a, b GeoPoint, link RadioLinkInput, equipA, equipB *RadioEquipment, terrain *TerrainProfile) error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"from.lat_deg", a.LatDeg}, {"from.lng_deg", a.LngDeg},
		{"to.lat_deg", b.LatDeg}, {"to.lng_deg", b.LngDeg},
		{"link.frequency_mhz", link.FrequencyMhz},
		{"link.bandwidth_khz", link.BandwidthKhz},
		{"link.tx_power_w", link.TxPowerW},
	} {
		if err := checkFinite(v.name, v.val); err != nil {
			return err
		}
	}
	if equipA != nil {
		if err := equipA.Validate(); err != nil {
			return errors.Wrap(err, "equip_from")
		}
	}
	if equipB != nil {
		if err := equipB.Validate(); err != nil {
			return errors.Wrap(err, "equip_to")
		}
	}
	if terrain != nil {
		if terrain.RainRateMmH < 0 {
			return newContractError("rain_rate_mm_h must be >= 0, got %v", terrain.RainRateMmH)
		}
		if err := checkFinite("terrain.rain_rate_mm_h", terrain.RainRateMmH); err != nil {
			return err
		}
		if err := checkFinite("terrain.liquid_water_content_g_m3", terrain.LiquidWaterContentGM3); err != nil {
			return err
		}
	}
	return nil
}
