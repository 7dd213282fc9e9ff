// SPDX-License-Identifier: EPL-2.0

package watermark

// Capacity returns how many frame bits a buffer of sampleCount interleaved
// samples can carry with the given channel layout. One bit rides in each
// frame's first-channel sample; a trailing partial frame carries nothing.
func Capacity(sampleCount, channels int) int {
	if channels < 1 {
		return 0
	}
	return sampleCount / channels
}

// Embed writes message into samples in place. Each frame bit replaces the
// least significant bit of one first-channel sample, starting at sample 0;
// every other value in the buffer is left untouched.
//
// samples holds interleaved PCM, so len(samples) must be a multiple of
// channels and channels must be at least 1. The frame needs
// FrameBits(len(message)) first-channel samples. When the carrier is
// shorter than that, ErrCapacityExceeded is returned and samples stay
// unmodified.
func Embed(samples []int16, channels int, message string) error {
	if err := checkLayout(samples, channels); err != nil {
		return err
	}

	bits := EncodeFrame(message)
	if len(bits) > Capacity(len(samples), channels) {
		return ErrCapacityExceeded
	}

	for i, bit := range bits {
		pos := i * channels
		samples[pos] = SetLSB(samples[pos], bit)
	}

	return nil
}

func checkLayout(samples []int16, channels int) error {
	if channels < 1 {
		return ErrInvalidChannelCount
	}
	if len(samples)%channels != 0 {
		return ErrMisalignedBuffer
	}
	return nil
}
