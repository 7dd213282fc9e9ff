// SPDX-License-Identifier: EPL-2.0

package watermark

// LSB returns the least significant bit of the sample's two's complement
// bit pattern, 0 or 1.
func LSB(sample int16) byte {
	return byte(uint16(sample) & 1)
}

// SetLSB returns sample with its least significant bit replaced by bit.
// The sample is handled as a raw 16-bit pattern, never arithmetically, so
// negative values keep their upper bits: SetLSB(-32768, 1) is -32767 and
// SetLSB(-1, 0) is -2.
func SetLSB(sample int16, bit byte) int16 {
	return int16(uint16(sample)&0xFFFE | uint16(bit&1))
}
