// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding
// and encoding.
//
// This package uses github.com/go-audio/aiff for the container work.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM 16-bit (most common)
//   - Mono and multi-channel
//   - Any sample rate
//
// # Streaming Decoder
//
// Use the Decoder to read AIFF files as a sample stream:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0].
//
// # Carrier Codec
//
// The Codec reads and writes whole files as audio.Clip values, keeping
// every 16-bit sample exact. That makes AIFF usable as a watermark
// carrier alongside WAV:
//
//	codec := aiff.Codec{}
//	clip, err := codec.ReadClip(file)
//	// ... mark clip.Samples in place ...
//	err = codec.WriteClip(outFile, clip)
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: the file is valid but not 16-bit PCM
//   - ErrUnsupportedAiffLayout: the COMM chunk carries unusable values
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// The codec handles the byte order differences; sample values survive a
// cross-container move between WAV and AIFF untouched.
//
// # File Extensions
//
// AIFF files typically use:
//   - .aif or .aiff for standard AIFF
//   - .aifc for AIFF-C (compressed, not supported)
//
// Always check for ErrOnlyPCM16bitSupported when opening files.
package aiff
