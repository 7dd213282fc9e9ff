package audmark

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
		{name: "unknown format", err: ErrUnknownFormat, want: "unknown audio format"},
		{name: "not a carrier format", err: ErrNotCarrierFormat, want: "format cannot carry a watermark"},
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

			wrapped := fmt.Errorf("resolving format: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is() failed for wrapped %v", tt.err)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrUnknownFormat, ErrNotCarrierFormat) {
		t.Error("errors.Is(ErrUnknownFormat, ErrNotCarrierFormat) = true, want distinct sentinels")
	}
}
