package huffpack

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// The wire format opens with a 32-bit magic number.  magicTree is
// magicNumber with the low bit set, marking the stream variant whose header
// carries the full trie shape.
const (
	magicNumber = uint64(0xface8200)
	magicTree   = magicNumber | 1
	magicBits   = 32
)

// maxTreeDepth bounds header nesting.  A strict binary trie over
// AlphabetSize leaves can never be deeper than AlphabetSize-1; anything
// deeper is a forged header, not a big tree.
const maxTreeDepth = AlphabetSize - 1

// writeTree serializes the trie in preorder: bit 0 for an internal node
// followed by its left and right subtrees, bit 1 plus a 9-bit Symbol for a
// leaf.  A single-leaf trie serializes as just the leaf, with no enclosing
// structure.
func writeTree(bw *bitio.Writer, t *tree) error {
	stack := make([]int32, 0, maxTreeDepth)
	stack = append(stack, t.root)
	for len(stack) != 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[index]
		if !n.leaf() {
			if err := bw.WriteBool(false); err != nil {
				return err
			}
			// Right below left so that left pops first.
			stack = append(stack, n.right, n.left)
			continue
		}

		if err := bw.WriteBool(true); err != nil {
			return err
		}
		if err := bw.WriteBits(uint64(n.symbol), symbolBits); err != nil {
			return err
		}
	}
	return nil
}

// readTree rebuilds the trie from its preorder serialization, mirroring
// writeTree bit for bit, left subtree before right.
func readTree(br *bitio.Reader) (*tree, error) {
	t := &tree{}
	root, err := readSubtree(br, t, 0)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func readSubtree(br *bitio.Reader, t *tree, depth int) (int32, error) {
	if depth > maxTreeDepth {
		return nilNode, fmt.Errorf("%w: tree header deeper than %d levels", ErrFormat, maxTreeDepth)
	}

	isLeaf, err := br.ReadBool()
	if err != nil {
		return nilNode, headerReadError(err)
	}

	if isLeaf {
		v, err := br.ReadBits(symbolBits)
		if err != nil {
			return nilNode, headerReadError(err)
		}
		if v >= AlphabetSize {
			return nilNode, fmt.Errorf("%w: symbol %d out of range", ErrFormat, v)
		}
		return t.addLeaf(Symbol(v)), nil
	}

	left, err := readSubtree(br, t, depth+1)
	if err != nil {
		return nilNode, err
	}
	right, err := readSubtree(br, t, depth+1)
	if err != nil {
		return nilNode, err
	}
	return t.addInternal(left, right), nil
}

// headerReadError maps stream exhaustion inside the header to
// ErrTruncatedHeader; any other failure passes through untouched.
func headerReadError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedHeader
	}
	return err
}
