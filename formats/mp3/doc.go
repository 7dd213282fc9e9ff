// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// It is decode-only: MP3 is a lossy format, so it can feed a carrier
// preparation pipeline but cannot hold a payload itself.
//
// # Supported Formats
//
// The decoder supports:
//   - MPEG-1, MPEG-2 and MPEG-2.5 Audio Layer III
//   - Constant and variable bitrates
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 renders interleaved stereo)
//   - Sample rate: whatever the stream carries (typically 44.1kHz or 48kHz)
//
// To turn an MP3 into a carrier clip, run it through the audio package
// and store the result as WAV or AIFF:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//	samples, _ := audio.Collect16(mono, 0)
//	clip := &audio.Clip{Samples: samples, Channels: 1, SampleRate: 8000}
//
//	out, _ := os.Create("carrier.wav")
//	wav.Codec{}.WriteClip(out, clip)
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo (use MonoMixer to convert)
//   - Sample values pass through float32, so the stream is a starting
//     point for new carriers, not a bit-exact transport for marked ones
package mp3
