package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// codeTable maps each Symbol to its bit code.  It is derived once per
// compression run from the freshly built trie and discarded afterwards;
// decompression never materializes one, the trie itself is the control
// structure there.
type codeTable [AlphabetSize]Code

// newCodeTable derives the per-symbol codes via a depth-first walk of the
// trie, accumulating edge bits along the path: 0 for left, 1 for right.
//
// A single-leaf trie has an empty root path, which would leave its one
// symbol unencodable.  By convention that symbol is assigned the one-bit
// code 0; the decoder applies the mirror convention by terminating on a
// leaf root without walking the payload.
func newCodeTable(t *tree) *codeTable {
	var table codeTable

	if root := t.nodes[t.root]; root.leaf() {
		table[root.symbol] = Code{Bits: []byte{0}}
		return &table
	}

	// frame.bit is the edge bit leading into frame.index; frame.depth is
	// the number of path bits accumulated once that edge is taken.  The
	// path buffer is truncated back to depth-1 on every pop, which undoes
	// deeper edges left over from the previous branch.
	type frame struct {
		index int32
		depth int
		bit   byte
	}

	path := make([]byte, 0, maxTreeDepth)
	stack := make([]frame, 0, maxTreeDepth)
	stack = append(stack, frame{index: t.root})
	for len(stack) != 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > 0 {
			path = append(path[:f.depth-1], f.bit)
		}

		n := t.nodes[f.index]
		if n.leaf() {
			table[n.symbol] = Code{Bits: append([]byte(nil), path[:f.depth]...)}
			continue
		}
		stack = append(stack,
			frame{index: n.right, depth: f.depth + 1, bit: 1},
			frame{index: n.left, depth: f.depth + 1, bit: 0},
		)
	}
	return &table
}

// dump writes a programmer-readable listing of the assigned codes to the
// given writer.  Symbols without a code are omitted.
func (table *codeTable) dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("codeTable{\n")
	for sym := Symbol(0); sym < AlphabetSize; sym++ {
		c := table[sym]
		if c.Len() == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\t%d = %s\n", sym, c)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
