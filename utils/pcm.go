// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM,
// clamping anything outside that range. Scaling is by 32767 so +1.0 stays
// inside the positive range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32.
// Division is by 32768 so the most negative sample maps to exactly -1.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
