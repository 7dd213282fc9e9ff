// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the watermarking layers build
// on: streaming sources, carrier clips, rate and channel conversion, and
// a format registry.
//
// # Sources and Clips
//
// Audio enters the system one of two ways. A Source streams normalized
// float32 samples and is what format decoders hand back:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// A Clip is a fully decoded run of interleaved 16-bit PCM. Watermarks
// address samples by position, so the marking path always works on clips:
//
//	clip, err := codec.ReadClip(f)
//	// clip.Samples, clip.Channels, clip.SampleRate
//
// Collect16 bridges the two, draining any Source into 16-bit PCM.
//
// # Carrier Preparation
//
// The Resampler changes sample rate with cubic interpolation and the
// MonoMixer averages channels down to one. Chained, they turn arbitrary
// input into a carrier with a chosen layout:
//
//	resampler := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampler)
//	pcm, err := audio.Collect16(mono, 4096)
//
// # Format Registry
//
// The registry maps format keys to codecs. Streaming decoders handle
// ingest of any supported format; carrier codecs additionally write
// clips back out and exist only for lossless containers, because a lossy
// encode would destroy the sample bit patterns a watermark lives in:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterCarrier("wav", wav.Codec{})
//
// # Sample Format
//
// Streaming samples are float32 in [-1.0, 1.0]; clips hold int16.
// Sources return io.EOF with n == 0 once drained:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use buf[:n]
//	}
package audio
