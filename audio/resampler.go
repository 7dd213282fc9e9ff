// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audmark/utils"
)

// Resampler streams src at a new sample rate using cubic interpolation
// over a four frame window. Channel count and interleaving are preserved.
// When downsampling, a one-pole low-pass tames aliasing before the
// interpolator runs.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	ratio    float64 // source frames consumed per output frame
	channels int

	// win holds the interpolation window: win[1] and win[2] bracket the
	// current output position, win[0] and win[3] shape the spline.
	win  [4][]float32
	have [4]bool

	// pos is the fractional read position between win[1] and win[2].
	pos float64

	readBuf []float32
	eof     bool

	// Low-pass state, one accumulator per channel.
	lowpass bool
	lpAlpha float32
	lpState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		srcRate:  float64(src.SampleRate()),
		dstRate:  float64(dstRate),
		ratio:    ratio,
		channels: channels,
		readBuf:  make([]float32, 4096),
		lowpass:  ratio > 1.0,
		lpAlpha:  0.5,
		lpState:  make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// prime fills the window with the first four source frames. A source that
// ends early has its last valid frame duplicated into the remaining
// slots; a source with nothing at all reports io.EOF.
func (r *Resampler) prime() error {
	for i := range 4 {
		n, err := r.src.ReadSamples(r.readBuf[:r.channels])
		if n > 0 {
			copy(r.win[i], r.readBuf[:n])
			r.have[i] = true

			// Seed the filter with the first frame so it does not ramp
			// up from silence.
			if i == 0 && r.lowpass {
				copy(r.lpState, r.readBuf[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}

			last := i
			if n == 0 {
				last = i - 1
			}
			for j := last + 1; j < 4; j++ {
				copy(r.win[j], r.win[last])
				r.have[j] = true
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("priming resampler: %w", err)
		}
	}
	return nil
}

// shift advances the window by one source frame and reads the next frame
// into the far slot, filtering it when downsampling.
func (r *Resampler) shift() error {
	if r.eof {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.have[0] = r.have[1]
	r.have[1] = r.have[2]
	r.have[2] = r.have[3]

	n, err := r.src.ReadSamples(r.readBuf[:r.channels])
	if n > 0 {
		copy(r.win[3], r.readBuf[:n])
		r.have[3] = true

		if r.lowpass {
			for c := range r.channels {
				r.win[3][c] = r.lpAlpha*r.win[3][c] + (1-r.lpAlpha)*r.lpState[c]
				r.lpState[c] = r.win[3][c]
			}
		}
	} else {
		r.have[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.have[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	return nil
}

// ReadSamples produces samples at the destination rate. len(dst) must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.have[1] {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.shift(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := range r.channels {
			y1 := r.win[1][c]
			y2 := r.win[2][c]

			y0 := y1
			if r.have[0] {
				y0 = r.win[0][c]
			}

			y3 := y2
			if r.have[3] {
				y3 = r.win[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
