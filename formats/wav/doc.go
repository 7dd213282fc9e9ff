// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading and writing WAV files in PCM 16-bit format.
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Supported Formats
//
//   - PCM 16-bit (most common WAV format)
//   - Mono, stereo and multi-channel
//   - Any sample rate
//
// # Streaming Decoder
//
// Use the Decoder to read WAV files as a sample stream:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0], suitable for resampling and mixing.
//
// # Carrier Codec
//
// Watermarking needs the full PCM block with exact sample values, so the
// Codec works on audio.Clip instead of a stream:
//
//	codec := wav.Codec{}
//	clip, err := codec.ReadClip(file)
//	// ... mark clip.Samples in place ...
//	err = codec.WriteClip(outFile, clip)
//
// ReadClip and WriteClip preserve every 16-bit sample bit for bit, which
// keeps embedded watermarks intact across a read/write cycle.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: the file is valid but not 16-bit PCM
//
// Example:
//
//	clip, err := codec.ReadClip(file)
//	if err == wav.ErrNotWavFile {
//	    fmt.Println("Not a WAV file")
//	}
package wav
