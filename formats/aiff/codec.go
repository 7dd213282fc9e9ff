// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmark/audio"
)

// encodeChunk caps how many samples are handed to the encoder per Write.
const encodeChunk = 8192

// Codec reads and writes whole 16-bit PCM AIFF files as audio.Clip values.
// The zero value is ready to use.
type Codec struct{}

// ReadClip decodes an entire AIFF file into memory. Only uncompressed
// 16-bit PCM is accepted.
func (Codec) ReadClip(r io.ReadSeeker) (*audio.Clip, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	clip := &audio.Clip{
		Channels:   format.NumChannels,
		SampleRate: format.SampleRate,
	}

	// Drain the PCM chunk; a short or zero count marks the end.
	buf := &goaudio.IntBuffer{Data: make([]int, encodeChunk)}
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, fmt.Errorf("decoding aiff data: %w", err)
		}
		for _, v := range buf.Data[:n] {
			clip.Samples = append(clip.Samples, int16(v))
		}
		if n < len(buf.Data) {
			break
		}
	}

	return clip, nil
}

// WriteClip encodes the clip as a 16-bit PCM AIFF file. The encoder seeks
// back to patch chunk sizes, hence io.WriteSeeker.
func (Codec) WriteClip(w io.WriteSeeker, clip *audio.Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}

	enc := aiff.NewEncoder(w, clip.SampleRate, 16, clip.Channels)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: clip.Channels,
			SampleRate:  clip.SampleRate,
		},
		SourceBitDepth: 16,
		Data:           make([]int, 0, encodeChunk),
	}

	// Keep each Write frame aligned; the encoder drops partial frames.
	chunk := encodeChunk - encodeChunk%clip.Channels
	if chunk < clip.Channels {
		chunk = clip.Channels
	}

	for off := 0; ; off += chunk {
		end := min(off+chunk, len(clip.Samples))

		buf.Data = buf.Data[:end-off]
		for i, s := range clip.Samples[off:end] {
			buf.Data[i] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing aiff data: %w", err)
		}

		if end == len(clip.Samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}

	return nil
}
