package audio

import (
	"errors"
	"testing"
	"time"
)

func TestClip_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		clip Clip
		want int
	}{
		{name: "mono", clip: Clip{Samples: make([]int16, 100), Channels: 1, SampleRate: 8000}, want: 100},
		{name: "stereo", clip: Clip{Samples: make([]int16, 100), Channels: 2, SampleRate: 8000}, want: 50},
		{name: "empty", clip: Clip{Channels: 2, SampleRate: 8000}, want: 0},
		{name: "no channels", clip: Clip{Samples: make([]int16, 100), SampleRate: 8000}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.clip.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClip_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		clip Clip
		want time.Duration
	}{
		{name: "one second mono", clip: Clip{Samples: make([]int16, 8000), Channels: 1, SampleRate: 8000}, want: time.Second},
		{name: "one second stereo", clip: Clip{Samples: make([]int16, 16000), Channels: 2, SampleRate: 8000}, want: time.Second},
		{name: "half second", clip: Clip{Samples: make([]int16, 4000), Channels: 1, SampleRate: 8000}, want: 500 * time.Millisecond},
		{name: "no rate", clip: Clip{Samples: make([]int16, 4000), Channels: 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.clip.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClip_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		clip    Clip
		wantErr error
	}{
		{name: "valid mono", clip: Clip{Samples: make([]int16, 64), Channels: 1, SampleRate: 8000}},
		{name: "valid stereo", clip: Clip{Samples: make([]int16, 64), Channels: 2, SampleRate: 44100}},
		{name: "valid empty samples", clip: Clip{Channels: 1, SampleRate: 8000}},
		{name: "zero channels", clip: Clip{Samples: make([]int16, 64), SampleRate: 8000}, wantErr: ErrNoChannels},
		{name: "negative channels", clip: Clip{Samples: make([]int16, 64), Channels: -1, SampleRate: 8000}, wantErr: ErrNoChannels},
		{name: "zero rate", clip: Clip{Samples: make([]int16, 64), Channels: 1}, wantErr: ErrNoSampleRate},
		{name: "ragged stereo", clip: Clip{Samples: make([]int16, 65), Channels: 2, SampleRate: 8000}, wantErr: ErrRaggedClip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.clip.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
