package audmark

import "errors"

var (
	// ErrUnknownFormat marks a path whose extension has no registered codec.
	ErrUnknownFormat = errors.New("unknown audio format")
	// ErrNotCarrierFormat marks a decodable format that cannot hold a
	// payload (lossy coding destroys sample bit patterns).
	ErrNotCarrierFormat = errors.New("format cannot carry a watermark")
)
