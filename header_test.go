package huffpack

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/icza/bitio"
)

// sameShape reports whether two tries have identical left/right structure
// and identical leaf symbols.
func sameShape(a, b *tree, ai, bi int32) bool {
	na, nb := a.nodes[ai], b.nodes[bi]
	if na.leaf() != nb.leaf() {
		return false
	}
	if na.leaf() {
		return na.symbol == nb.symbol
	}
	return sameShape(a, b, na.left, nb.left) && sameShape(a, b, na.right, nb.right)
}

func TestHeaderSelfInverse(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	testData := map[string][]byte{
		"single leaf": nil,
		"two leaves":  bytes.Repeat([]byte{0x41}, 10),
		"text":        []byte("the quick brown fox jumps over the lazy dog"),
		"all bytes":   allBytes,
	}
	for name, data := range testData {
		data := data
		t.Run(name, func(t *testing.T) {
			original := buildTree(mustCount(t, data))

			var buf bytes.Buffer
			bw := bitio.NewWriter(&buf)
			if err := writeTree(bw, original); err != nil {
				t.Fatalf("writeTree failed: %v", err)
			}
			if err := bw.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			restored, err := readTree(bitio.NewReader(bytes.NewReader(buf.Bytes())))
			if err != nil {
				t.Fatalf("readTree failed: %v", err)
			}

			if restored.numLeaves() != original.numLeaves() {
				t.Errorf("wrong leaf count:\n\texpect: %d\n\tactual: %d", original.numLeaves(), restored.numLeaves())
			}
			if !sameShape(original, restored, original.root, restored.root) {
				t.Errorf("restored tree does not match the original")
			}
		})
	}
}

func TestDecompressBadMagic(t *testing.T) {
	compressed := roundTrip(t, []byte("hello"))
	compressed[0] ^= 0xff

	var restored bytes.Buffer
	err := Decompress(bytes.NewReader(compressed), &restored)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestDecompressTruncatedHeader(t *testing.T) {
	compressed := roundTrip(t, []byte(strings.Repeat("abracadabra", 10)))

	// Keeping the magic plus at most one header byte always cuts the
	// stream off mid-tree for multi-symbol input.
	for _, size := range [...]int{4, 5} {
		truncated := compressed[:size]
		var restored bytes.Buffer
		err := Decompress(bytes.NewReader(truncated), &restored)
		if !errors.Is(err, ErrTruncatedHeader) {
			t.Errorf("truncated to %d bytes: expected ErrTruncatedHeader, got %v", size, err)
		}
	}
}

func TestDecompressEmptyInput(t *testing.T) {
	var restored bytes.Buffer
	err := Decompress(bytes.NewReader(nil), &restored)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestReadTreeSymbolOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	if err := bw.WriteBits(magicTree, magicBits); err != nil {
		t.Fatalf("WriteBits failed: %v", err)
	}
	// A leaf claiming symbol 300, which no alphabet value maps to.
	if err := bw.WriteBool(true); err != nil {
		t.Fatalf("WriteBool failed: %v", err)
	}
	if err := bw.WriteBits(300, symbolBits); err != nil {
		t.Fatalf("WriteBits failed: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var restored bytes.Buffer
	err := Decompress(bytes.NewReader(buf.Bytes()), &restored)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestReadTreeDepthBomb(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	if err := bw.WriteBits(magicTree, magicBits); err != nil {
		t.Fatalf("WriteBits failed: %v", err)
	}
	// A header of nothing but internal-node bits nests one level per
	// bit; past maxTreeDepth it cannot describe any real trie.
	for i := 0; i < 2*maxTreeDepth; i++ {
		if err := bw.WriteBool(false); err != nil {
			t.Fatalf("WriteBool failed: %v", err)
		}
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var restored bytes.Buffer
	err := Decompress(bytes.NewReader(buf.Bytes()), &restored)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestDecompressLeafRootWithoutEOB(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	if err := bw.WriteBits(magicTree, magicBits); err != nil {
		t.Fatalf("WriteBits failed: %v", err)
	}
	// A single-leaf header whose leaf is a literal byte instead of the
	// end marker: there is no way to ever terminate such a payload.
	if err := bw.WriteBool(true); err != nil {
		t.Fatalf("WriteBool failed: %v", err)
	}
	if err := bw.WriteBits(0x41, symbolBits); err != nil {
		t.Fatalf("WriteBits failed: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var restored bytes.Buffer
	err := Decompress(bytes.NewReader(buf.Bytes()), &restored)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}
