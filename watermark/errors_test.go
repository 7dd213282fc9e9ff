package watermark

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "capacity exceeded", err: ErrCapacityExceeded, want: "message too long for carrier"},
		{name: "no watermark", err: ErrNoWatermark, want: "no watermark found"},
		{name: "invalid channel count", err: ErrInvalidChannelCount, want: "channel count must be at least 1"},
		{name: "misaligned buffer", err: ErrMisalignedBuffer, want: "sample count must be multiple of channels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatal("sentinel error is nil")
			}

			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}

			wrapped := fmt.Errorf("marking clip: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is() failed for wrapped %v", tt.err)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrCapacityExceeded, ErrNoWatermark, ErrInvalidChannelCount, ErrMisalignedBuffer}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want distinct sentinels", a, b)
			}
		}
	}
}
