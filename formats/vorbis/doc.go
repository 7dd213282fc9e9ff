// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams. Vorbis is a free, open-source lossy compression format, so the
// package is decode-only: it can feed a carrier preparation pipeline but
// cannot hold a payload itself.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg files)
//   - Variable bitrates
//   - Mono, stereo and multichannel layouts
//   - Any sample rate the stream declares
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0]. Vorbis is float-native, so
// values pass through without requantization.
//
// # Channel Layout
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// ReadSamples only delivers whole frames: with a stereo stream and an
// odd-sized buffer the last slot stays untouched.
//
// To convert to mono:
//
//	vorbisSource, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(vorbisSource)
//
// # Limitations
//
// Note:
//   - Vorbis encoding is not supported (decoding only)
//   - Sample values pass through float32, so the stream is a starting
//     point for new carriers, not a bit-exact transport for marked ones
//
// # Example: Vorbis to WAV Carrier
//
//	oggFile, _ := os.Open("input.ogg")
//	source, _ := vorbis.Decoder{}.Decode(oggFile)
//
//	// Resample, downmix and collect as 16-bit PCM
//	mono := audio.NewMonoMixer(audio.NewResampler(source, 16000))
//	samples, _ := audio.Collect16(mono, 0)
//	clip := &audio.Clip{Samples: samples, Channels: 1, SampleRate: 16000}
//
//	wavFile, _ := os.Create("carrier.wav")
//	wav.Codec{}.WriteClip(wavFile, clip)
package vorbis
