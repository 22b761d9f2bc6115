package huffpack

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Decompress decodes a stream produced by Compress, writing the original
// bytes to dst.
//
// The magic number is validated first (ErrFormat on mismatch), then the
// trie is rebuilt from the header (ErrTruncatedHeader if the stream ends
// inside it), then the payload is walked bit by bit until the end-of-block
// leaf is reached (ErrTruncatedPayload if the stream ends first).  A
// corrupted input never decodes to a plausible-looking result without a
// surfaced error.
func Decompress(src io.Reader, dst io.Writer) error {
	br := bitio.NewReader(bufio.NewReader(src))

	magic, err := br.ReadBits(magicBits)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: missing magic number", ErrFormat)
	}
	if err != nil {
		return err
	}
	if magic != magicTree {
		return fmt.Errorf("%w: bad magic number %#08x", ErrFormat, magic)
	}

	t, err := readTree(br)
	if err != nil {
		return err
	}

	fw := bufio.NewWriter(dst)
	if err := decode(br, fw, t); err != nil {
		return err
	}
	return fw.Flush()
}

// decode is the decoder state machine: the state is a position in the trie,
// initialized to the root.  Each payload bit moves left (0) or right (1);
// landing on a leaf either terminates decoding (EOB) or emits the leaf's
// byte and resets the position to the root.
func decode(br *bitio.Reader, dst io.ByteWriter, t *tree) error {
	if root := t.nodes[t.root]; root.leaf() {
		// Single-leaf trie: the payload encodes zero bytes and there
		// is nothing to walk.  The lone leaf must be the end marker;
		// any other leaf is a forged header.
		if root.symbol != EOB {
			return fmt.Errorf("%w: single-leaf tree without end-of-block marker", ErrFormat)
		}
		return nil
	}

	cur := t.root
	for {
		bit, err := br.ReadBool()
		if err != nil {
			return payloadReadError(err)
		}

		n := t.nodes[cur]
		if bit {
			cur = n.right
		} else {
			cur = n.left
		}

		leaf := t.nodes[cur]
		if !leaf.leaf() {
			continue
		}
		if leaf.symbol == EOB {
			return nil
		}
		if err := dst.WriteByte(byte(leaf.symbol)); err != nil {
			return err
		}
		cur = t.root
	}
}

// payloadReadError maps stream exhaustion inside the payload to
// ErrTruncatedPayload; any other failure passes through untouched.
func payloadReadError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedPayload
	}
	return err
}
