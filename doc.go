// Package huffpack implements a lossless byte-stream compressor based on
// classic static Huffman coding.  Compression is two-pass: the source is
// scanned once to build a weight table, a coding trie is assembled greedily
// from the weights, and the source is scanned again to emit the
// variable-length code for each byte.
//
// The compressed stream is self-describing: a 32-bit magic number, the trie
// serialized in preorder, and the bit-packed payload terminated by the code
// of a synthetic end-of-block symbol.  Decompression rebuilds the trie from
// the header and walks it bit by bit, so the weight table itself is never
// transmitted.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
