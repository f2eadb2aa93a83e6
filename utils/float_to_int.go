// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a float sample to 16-bit PCM.
//
// The sample is clamped to [-1, 1], then negative values are scaled by 32768
// and non-negative values by 32767, truncating toward zero. The product is
// computed in float64 so the truncation matches a double precision encoder
// bit for bit. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}

	if v < 0 {
		return int16(v * 0x8000)
	}

	return int16(v * 0x7FFF)
}

// Int16ToFloat32 is the decoder side inverse of Float32ToInt16.
func Int16ToFloat32(v int16) float32 {
	if v < 0 {
		return float32(v) / 0x8000
	}

	return float32(v) / 0x7FFF
}
