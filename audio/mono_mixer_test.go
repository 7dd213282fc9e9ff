// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Fatalf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 50)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n == 0 {
		t.Fatal("ReadSamples() returned 0 samples")
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5 (unchanged)", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(frame int, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})

	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Fatalf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 50)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n == 0 {
		t.Fatal("ReadSamples() returned 0 samples")
	}

	for i := range n {
		if math.Abs(float64(buf[i]-0.5)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.5 (average of 0.4 and 0.6)", i, buf[i])
		}
	}
}

func TestMonoMixer_MultiChannel(t *testing.T) {
	t.Parallel()

	// Four channels averaging to 0.15.
	src := newMockSource(8000, 4, 100, func(frame int, channel int) float32 {
		return []float32{0.0, 0.1, 0.2, 0.3}[channel]
	})

	mixer := NewMonoMixer(src)

	buf := make([]float32, 25)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n == 0 {
		t.Fatal("ReadSamples() returned 0 samples")
	}

	for i := range n {
		if math.Abs(float64(buf[i]-0.15)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.15", i, buf[i])
		}
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 5)
	mixer := NewMonoMixer(src)

	buf := make([]float32, 100)
	n, err := mixer.ReadSamples(buf)
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5 mono samples", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 {
		t.Errorf("After EOF, ReadSamples() n = %d, want 0", n)
	}
	if err != io.EOF {
		t.Errorf("After EOF, ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 100)
	mixer := NewMonoMixer(src)

	n, err := mixer.ReadSamples(nil)
	if n != 0 {
		t.Errorf("ReadSamples(nil) n = %d, want 0", n)
	}
	if err != nil && err != io.EOF {
		t.Errorf("ReadSamples(nil) error = %v", err)
	}
}

func TestMonoMixer_PreservesMetadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(22050, 6, 100)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 22050 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 22050", mixer.SampleRate())
	}
	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 100)
	mixer := NewMonoMixer(src)

	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	src := newSineSource(44100, 2, 1000000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		_, _ = mixer.ReadSamples(buf)
	}
}

func BenchmarkMonoMixer_MultiChannel(b *testing.B) {
	src := newSineSource(44100, 6, 1000000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		_, _ = mixer.ReadSamples(buf)
	}
}
