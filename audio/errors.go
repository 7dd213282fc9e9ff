// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrNoChannels     = errors.New("clip needs at least one channel")
	ErrNoSampleRate   = errors.New("clip needs a positive sample rate")
	ErrRaggedClip     = errors.New("clip samples must be multiple of channels")
)
