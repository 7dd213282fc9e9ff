// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

// Source is a streaming reader of decoded audio.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a streaming Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// CarrierCodec reads and writes whole clips of losslessly stored 16-bit
// PCM. Watermarks ride in sample bit patterns, so only containers that
// keep those patterns intact can act as carriers.
type CarrierCodec interface {
	ReadClip(r io.ReadSeeker) (*Clip, error)
	WriteClip(w io.WriteSeeker, clip *Clip) error
}

// Registry maps format keys (e.g., "wav", "mp3") to codecs. Every format
// can register a streaming Decoder for ingest; lossless formats also
// register a CarrierCodec for marking and re-serialization.
type Registry struct {
	decoders map[string]Decoder
	carriers map[string]CarrierCodec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]Decoder),
		carriers: make(map[string]CarrierCodec),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[format]
	return d, ok
}

func (r *Registry) RegisterCarrier(format string, c CarrierCodec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.carriers[format] = c
}

func (r *Registry) GetCarrier(format string) (CarrierCodec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.carriers[format]
	return c, ok
}

// Formats returns the sorted keys with a registered streaming decoder.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return sortedKeys(r.decoders)
}

// CarrierFormats returns the sorted keys with a registered carrier codec.
func (r *Registry) CarrierFormats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return sortedKeys(r.carriers)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
