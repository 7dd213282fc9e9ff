// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audmark/utils"
)

// defaultCollectBuf is the read size used when the caller does not care.
const defaultCollectBuf = 4096

// Collect16 drains src and returns its content as 16-bit PCM, preserving
// the source's channel interleaving. bufferSize controls the size of each
// ReadSamples call; values below 1 pick a reasonable default.
//
// Collecting an entire stream into memory is what the watermark layer
// needs: it addresses samples by position, which a streaming interface
// cannot offer.
func Collect16(src Source, bufferSize int) ([]int16, error) {
	if bufferSize < 1 {
		bufferSize = defaultCollectBuf
	}

	var pcm []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			for i := range n {
				pcm = append(pcm, utils.Float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}

	return pcm, nil
}
