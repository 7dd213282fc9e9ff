package audmark

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audmark/audio"
	"github.com/ik5/audmark/formats/aiff"
	"github.com/ik5/audmark/formats/mp3"
	"github.com/ik5/audmark/formats/vorbis"
	"github.com/ik5/audmark/formats/wav"
	"github.com/ik5/audmark/watermark"
)

// defaultRegistry backs the package-level file helpers.
var defaultRegistry = DefaultRegistry()

// DefaultRegistry returns a fresh registry with every built-in format
// wired in: streaming decoders for WAV, AIFF, MP3 and Ogg Vorbis, and
// carrier codecs for the lossless pair (WAV, AIFF). Callers that need a
// different format set can mutate the returned registry freely; the
// package-level helpers keep using their own copy.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	r.RegisterCarrier("wav", wav.Codec{})
	r.RegisterCarrier("aiff", aiff.Codec{})

	return r
}

// FormatKey derives the registry key for a path from its extension.
// Alternate spellings map to their canonical key ("aif" to "aiff",
// "oga" to "ogg").
func FormatKey(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	case "aif":
		return "aiff"
	case "oga":
		return "ogg"
	}

	return ext
}

// EmbedFile reads the carrier at srcPath, embeds message into its samples
// and writes the marked carrier to dstPath. Both paths must name lossless
// carrier formats, chosen by extension; they do not have to be the same
// format. The carrier is fully decoded before the output file is created,
// so dstPath may equal srcPath.
func EmbedFile(srcPath, dstPath, message string) error {
	clip, err := readCarrier(srcPath)
	if err != nil {
		return err
	}

	if err := watermark.Embed(clip.Samples, clip.Channels, message); err != nil {
		return fmt.Errorf("embedding message: %w", err)
	}

	return writeCarrier(dstPath, clip)
}

// ExtractFile reads the carrier at path and returns the embedded message.
// watermark.ErrNoWatermark is wrapped into the error when the carrier holds
// no end marker.
func ExtractFile(path string) (string, error) {
	clip, err := readCarrier(path)
	if err != nil {
		return "", err
	}

	message, err := watermark.Extract(clip.Samples, clip.Channels)
	if err != nil {
		return "", fmt.Errorf("extracting message: %w", err)
	}

	return message, nil
}

// PrepareCarrier pulls src through the conversion pipeline and returns the
// result as a clip ready for marking. targetRate below 1 keeps the source
// rate; downmix folds all channels into one.
func PrepareCarrier(src audio.Source, targetRate int, downmix bool) (*audio.Clip, error) {
	out := src
	if targetRate > 0 && targetRate != src.SampleRate() {
		out = audio.NewResampler(out, targetRate)
	}
	if downmix && out.Channels() > 1 {
		out = audio.NewMonoMixer(out)
	}

	samples, err := audio.Collect16(out, 0)
	if err != nil {
		return nil, err
	}

	return &audio.Clip{
		Samples:    samples,
		Channels:   out.Channels(),
		SampleRate: out.SampleRate(),
	}, nil
}

// PrepareCarrierFile converts the audio file at srcPath into a lossless
// carrier at dstPath. The source format only needs a streaming decoder,
// so lossy material (MP3, Ogg Vorbis) can be promoted into carrier form.
func PrepareCarrierFile(srcPath, dstPath string, targetRate int, downmix bool) error {
	key := FormatKey(srcPath)

	dec, ok := defaultRegistry.Get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, key)
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", srcPath, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", srcPath, err)
	}
	defer src.Close()

	clip, err := PrepareCarrier(src, targetRate, downmix)
	if err != nil {
		return err
	}

	return writeCarrier(dstPath, clip)
}

// carrierFor resolves the carrier codec for a path, distinguishing
// unknown formats from known formats that cannot hold a payload.
func carrierFor(path string) (audio.CarrierCodec, error) {
	key := FormatKey(path)

	codec, ok := defaultRegistry.GetCarrier(key)
	if ok {
		return codec, nil
	}

	if _, decodable := defaultRegistry.Get(key); decodable {
		return nil, fmt.Errorf("%w: %q", ErrNotCarrierFormat, key)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, key)
}

func readCarrier(path string) (*audio.Clip, error) {
	codec, err := carrierFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	clip, err := codec.ReadClip(f)
	if err != nil {
		return nil, fmt.Errorf("reading carrier %s: %w", path, err)
	}

	return clip, nil
}

func writeCarrier(path string, clip *audio.Clip) error {
	codec, err := carrierFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := codec.WriteClip(f, clip); err != nil {
		f.Close()
		return fmt.Errorf("writing carrier %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
