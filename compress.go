package huffpack

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
)

// Compress encodes src losslessly into dst.
//
// Compression is two-pass, which is why src must be seekable: the first
// pass counts byte frequencies and consumes src to exhaustion, then src is
// rewound and re-read to emit the codes.  The output is the 32-bit magic
// number, the preorder-serialized trie, the per-byte codes, the
// end-of-block code, and zero padding out to a byte boundary.
//
// Concurrent calls on distinct streams are safe; nothing is shared between
// runs.
func Compress(src io.ReadSeeker, dst io.Writer) error {
	br := bitio.NewReader(bufio.NewReader(src))
	weights, err := countFrequencies(br)
	if err != nil {
		return err
	}

	t := buildTree(weights)
	table := newCodeTable(t)

	fw := bufio.NewWriter(dst)
	bw := bitio.NewWriter(fw)
	if err := bw.WriteBits(magicTree, magicBits); err != nil {
		return err
	}
	if err := writeTree(bw, t); err != nil {
		return err
	}

	// Second pass: the counting pass left src at end of stream.
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	br = bitio.NewReader(bufio.NewReader(src))
	if err := encode(br, bw, table); err != nil {
		return err
	}

	// Close pads the final partial byte with zero bits.
	if err := bw.Close(); err != nil {
		return err
	}
	return fw.Flush()
}

// encode emits the code for every source byte in order, then the EOB code.
// The payload carries no length field; the EOB code is the terminator.
func encode(br *bitio.Reader, bw *bitio.Writer, table *codeTable) error {
	for {
		v, err := br.ReadBits(bitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := table[v].writeTo(bw); err != nil {
			return err
		}
	}
	return table[EOB].writeTo(bw)
}
