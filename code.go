package huffpack

import (
	"strconv"
	"strings"

	"github.com/icza/bitio"
)

// Code represents a sequence of bits of arbitrary length.
//
// A heavily skewed weight distribution can produce a near-linear trie whose
// deepest codes approach AlphabetSize-1 bits, far wider than any machine
// word, so the bits are kept as an explicit slice rather than packed into
// an integer.
type Code struct {
	// Bits holds one bit per element, in emission order.  Every element
	// is 0 or 1.
	Bits []byte
}

// Len returns the number of bits in the code.  A zero Len means no code has
// been assigned.
func (c Code) Len() int {
	return len(c.Bits)
}

// String returns the string representation of this Code.
func (c Code) String() string {
	var sb strings.Builder
	for _, bit := range c.Bits {
		sb.WriteByte('0' + bit)
	}
	return strconv.Quote(sb.String())
}

// writeTo emits the code one bit at a time, first bit first.
func (c Code) writeTo(bw *bitio.Writer) error {
	for _, bit := range c.Bits {
		if err := bw.WriteBool(bit != 0); err != nil {
			return err
		}
	}
	return nil
}
