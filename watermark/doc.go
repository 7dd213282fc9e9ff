// SPDX-License-Identifier: EPL-2.0

// Package watermark embeds and recovers short text messages in 16-bit PCM
// audio using least significant bit coding.
//
// A message is serialized into a frame: every payload byte most significant
// bit first, closed by sixteen zero bits. Frame bits replace the least
// significant bit of the first channel's samples, one bit per frame of
// interleaved audio. Other channels and samples past the frame keep their
// values, so a marked clip differs from the original by at most one
// amplitude step per carrying sample.
//
// # Embedding
//
//	samples := clip.Samples // interleaved int16 PCM
//	err := watermark.Embed(samples, clip.Channels, "serial 0143")
//	if errors.Is(err, watermark.ErrCapacityExceeded) {
//		// carrier too short for the message frame
//	}
//
// # Extraction
//
//	msg, err := watermark.Extract(samples, clip.Channels)
//	if errors.Is(err, watermark.ErrNoWatermark) {
//		// no end marker in the designated samples
//	}
//
// An empty message is a valid watermark: Extract returns "" with a nil
// error for it, and ErrNoWatermark only when the end marker never appears.
//
// # Limits
//
// The sixteen-zero end marker is the only framing, and marker detection
// cannot tell payload zeros from marker zeros. A payload containing
// sixteen consecutive zero bits (two NUL bytes back to back, for instance)
// closes the frame early and decodes truncated, and a payload whose final
// byte ends in zero bits loses that byte to the marker. Payloads are raw
// bytes; callers that need arbitrary binary content must add their own
// escaping on top.
//
// Lossy codecs do not preserve sample bit patterns. Marked audio must be
// stored losslessly (WAV, AIFF) for the watermark to survive.
package watermark
