package watermark

import "errors"

var (
	ErrCapacityExceeded    = errors.New("message too long for carrier")
	ErrNoWatermark         = errors.New("no watermark found")
	ErrInvalidChannelCount = errors.New("channel count must be at least 1")
	ErrMisalignedBuffer    = errors.New("sample count must be multiple of channels")
)
