// SPDX-License-Identifier: EPL-2.0

package watermark

// Extract scans the least significant bits of the first channel's samples
// for an embedded frame and returns its payload. Scanning stops at the
// first end marker; samples past it are never read.
//
// ErrNoWatermark is returned when all designated samples are consumed
// without an end marker appearing. An empty string with a nil error means
// an empty message was embedded, which is a different outcome.
func Extract(samples []int16, channels int) (string, error) {
	if err := checkLayout(samples, channels); err != nil {
		return "", err
	}

	var dec frameDecoder
	for i := range Capacity(len(samples), channels) {
		if dec.push(LSB(samples[i*channels])) {
			return dec.message(), nil
		}
	}

	return "", ErrNoWatermark
}
