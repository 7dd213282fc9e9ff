// SPDX-License-Identifier: EPL-2.0

// Package audmark embeds and extracts short text messages in audio files
// by manipulating the least significant bits of 16-bit PCM samples.
//
// The payload rides in the first channel only: one bit per frame, message
// bytes most significant bit first, closed by sixteen zero bits. A change
// of one LSB step is inaudible in normal material, and the remaining
// channels and samples are left untouched.
//
// # Quick Start
//
// Marking a WAV file and reading the mark back:
//
//	err := audmark.EmbedFile("carrier.wav", "marked.wav", "serial-0042?")
//	if err != nil {
//	    // handle error
//	}
//
//	message, err := audmark.ExtractFile("marked.wav")
//	// message == "serial-0042?"
//
// # Carriers
//
// A watermark lives in sample bit patterns, so only losslessly stored PCM
// can carry one. WAV and AIFF act as carriers; EmbedFile and ExtractFile
// pick the codec from the file extension, and the two paths may use
// different carrier formats.
//
// Lossy formats (MP3, Ogg Vorbis) cannot hold a payload, but they can be
// promoted into carriers. PrepareCarrierFile decodes them, optionally
// resamples and downmixes, and writes a lossless copy:
//
//	// music.mp3 -> 16kHz mono carrier.wav
//	err := audmark.PrepareCarrierFile("music.mp3", "carrier.wav", 16000, true)
//
// # Working With Buffers
//
// File handling is a convenience layer. The core operates on in-memory
// sample buffers and is importable on its own:
//
//	samples := clip.Samples // []int16, interleaved
//	err := watermark.Embed(samples, clip.Channels, "tag")
//	message, err := watermark.Extract(samples, clip.Channels)
//
// See the watermark package for capacity rules and framing details, and
// the audio package for the streaming pipeline the preparation path is
// built from.
//
// # Message Limits
//
// A carrier with f frames holds at most (f-16)/8 message bytes; Embed
// fails with watermark.ErrCapacityExceeded before touching any sample if
// the message does not fit. Messages are byte strings; multi-byte
// encodings round-trip unchanged.
//
// A message whose bit stream itself contains sixteen consecutive zero
// bits reads back truncated at that point, a consequence of the delimiter
// format. Payloads that avoid trailing zero bits (ASCII text ending in an
// odd byte) round-trip exactly.
//
// # Supported Formats
//
//   - WAV (PCM 16-bit) via formats/wav: carrier + streaming decode
//   - AIFF (PCM 16-bit) via formats/aiff: carrier + streaming decode
//   - MP3 via formats/mp3: streaming decode for carrier preparation
//   - Ogg Vorbis via formats/vorbis: streaming decode for carrier preparation
//
// All format codecs are reachable through a Registry (see DefaultRegistry),
// keyed by extension-style names.
package audmark
