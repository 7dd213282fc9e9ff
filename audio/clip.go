// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Clip is a fully decoded run of interleaved 16-bit PCM together with its
// layout. Carrier codecs produce and consume clips; the watermark layer
// works on Samples in place.
type Clip struct {
	Samples    []int16
	Channels   int
	SampleRate int
}

// Frames returns the number of complete interleaved frames in the clip.
func (c *Clip) Frames() int {
	if c.Channels < 1 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the clip's play time at its sample rate.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate < 1 {
		return 0
	}
	return time.Duration(float64(c.Frames()) / float64(c.SampleRate) * float64(time.Second))
}

// Validate reports whether the clip describes a well-formed PCM buffer:
// at least one channel, a positive sample rate, and a sample count that
// divides evenly into frames.
func (c *Clip) Validate() error {
	if c.Channels < 1 {
		return ErrNoChannels
	}
	if c.SampleRate < 1 {
		return ErrNoSampleRate
	}
	if len(c.Samples)%c.Channels != 0 {
		return ErrRaggedClip
	}
	return nil
}
