package huffpack

import (
	"io"
	"math"

	"github.com/icza/bitio"
)

// countFrequencies scans src to exhaustion and tallies the occurrences of
// each byte value.  EOB is always assigned a weight of 1 so that it has a
// leaf in the trie even when src is empty.  Counts saturate at MaxUint32
// instead of wrapping.
//
// The reader is deliberately left positioned at end of stream: compression
// is a two-pass process, and Compress rewinds the underlying source before
// the encoding pass.
func countFrequencies(br *bitio.Reader) (*[AlphabetSize]uint32, error) {
	var weights [AlphabetSize]uint32
	weights[EOB] = 1

	for {
		v, err := br.ReadBits(bitsPerWord)
		if err == io.EOF {
			return &weights, nil
		}
		if err != nil {
			return nil, err
		}
		if weights[v] != math.MaxUint32 {
			weights[v]++
		}
	}
}
