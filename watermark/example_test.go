// SPDX-License-Identifier: EPL-2.0

package watermark_test

import (
	"errors"
	"fmt"

	"github.com/ik5/audmark/watermark"
)

// Example embeds a tag into a mono clip and reads it back.
func Example() {
	samples := make([]int16, 256) // interleaved 16-bit PCM

	if err := watermark.Embed(samples, 1, "tag 77"); err != nil {
		fmt.Println("embed:", err)
		return
	}

	msg, err := watermark.Extract(samples, 1)
	if err != nil {
		fmt.Println("extract:", err)
		return
	}

	fmt.Println(msg)
	// Output:
	// tag 77
}

// ExampleEncodeFrame shows the wire form of a frame: payload bytes most
// significant bit first, then the sixteen-zero end marker.
func ExampleEncodeFrame() {
	for _, bit := range watermark.EncodeFrame("Hi") {
		fmt.Print(bit)
	}
	fmt.Println()
	// Output:
	// 01001000011010010000000000000000
}

// ExampleEmbed_capacity demonstrates the capacity check: a frame needs
// eight bits per payload byte plus sixteen marker bits, one first-channel
// sample each.
func ExampleEmbed_capacity() {
	samples := make([]int16, 24) // room for 24 bits; "Hi" needs 32

	err := watermark.Embed(samples, 1, "Hi")
	fmt.Println(errors.Is(err, watermark.ErrCapacityExceeded))
	// Output:
	// true
}

// ExampleExtract_absent shows extraction from a carrier that never held a
// watermark.
func ExampleExtract_absent() {
	samples := make([]int16, 64)
	for i := range samples {
		samples[i] = 1 // every LSB set, so the end marker never appears
	}

	_, err := watermark.Extract(samples, 1)
	fmt.Println(err)
	// Output:
	// no watermark found
}
