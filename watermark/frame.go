// SPDX-License-Identifier: EPL-2.0

package watermark

// terminatorBits is the length of the all-zero run that closes a frame.
const terminatorBits = 16

// FrameBits returns the total frame length in bits for a message of
// messageLen bytes, end marker included.
func FrameBits(messageLen int) int {
	return messageLen*8 + terminatorBits
}

// EncodeFrame serializes message into a bit stream with one bit per byte,
// each element 0 or 1. Payload bytes are emitted most significant bit
// first, followed by the sixteen-zero end marker.
func EncodeFrame(message string) []byte {
	bits := make([]byte, 0, FrameBits(len(message)))
	for _, b := range []byte(message) {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>shift)&1)
		}
	}
	for range terminatorBits {
		bits = append(bits, 0)
	}
	return bits
}

// DecodeFrame scans bits for a complete frame and returns its payload
// text. The boolean is false when the stream ends without an end marker
// ever appearing; the payload is unusable in that case.
//
// The scan closes the frame at the first position where the last sixteen
// bits are all zero, no matter whether those zeros belong to the payload,
// the marker, or a mix of both. A payload carrying sixteen consecutive
// zero bits decodes truncated ("A\x00\x00B" comes back as "A"), and a
// payload whose final byte has trailing zero bits donates them to the
// marker and loses that byte ("AB" comes back as "A"). After the marker is
// found, a trailing payload group shorter than eight bits is dropped.
func DecodeFrame(bits []byte) (string, bool) {
	var dec frameDecoder
	for _, bit := range bits {
		if dec.push(bit) {
			return dec.message(), true
		}
	}
	return "", false
}

// frameDecoder consumes a bit stream one bit at a time and watches for the
// end marker. The last terminatorBits bits live in a shift register, so
// detection is a single compare per pushed bit.
type frameDecoder struct {
	bits []byte
	tail uint16
	n    int
}

// push consumes one bit and reports whether it completed the end marker.
func (d *frameDecoder) push(bit byte) bool {
	bit &= 1
	d.bits = append(d.bits, bit)
	d.tail = d.tail<<1 | uint16(bit)
	d.n++
	return d.n >= terminatorBits && d.tail == 0
}

// message decodes the payload bits gathered before the end marker into
// text. Groups of eight are read most significant bit first; an incomplete
// trailing group is dropped.
func (d *frameDecoder) message() string {
	payload := d.bits[:len(d.bits)-terminatorBits]
	msg := make([]byte, 0, len(payload)/8)
	for i := 0; i+8 <= len(payload); i += 8 {
		var b byte
		for _, bit := range payload[i : i+8] {
			b = b<<1 | bit
		}
		msg = append(msg, b)
	}
	return string(msg)
}
