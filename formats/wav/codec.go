// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audmark/audio"
)

// encodeChunk caps how many samples are handed to the encoder per Write.
const encodeChunk = 8192

// Codec reads and writes whole 16-bit PCM WAV files as audio.Clip values.
// The zero value is ready to use.
type Codec struct{}

// ReadClip decodes an entire WAV file into memory. Only uncompressed
// 16-bit PCM is accepted; anything else fails with ErrNotWavFile or
// ErrOnlyPCM16bitSupported.
func (Codec) ReadClip(r io.ReadSeeker) (*audio.Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}

	clip := &audio.Clip{
		Samples:    make([]int16, len(buf.Data)),
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
	}
	for i, v := range buf.Data {
		clip.Samples[i] = int16(v)
	}

	return clip, nil
}

// WriteClip encodes the clip as a canonical 16-bit PCM WAV file. The
// encoder needs to seek back and patch chunk sizes, hence io.WriteSeeker.
func (Codec) WriteClip(w io.WriteSeeker, clip *audio.Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}

	enc := wav.NewEncoder(w, clip.SampleRate, 16, clip.Channels, 1)

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
			return fmt.Errorf("writing wav data: %w", err)
		}

		if end == len(clip.Samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
