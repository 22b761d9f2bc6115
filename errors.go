package huffpack

import (
	"errors"
)

var (
	// ErrFormat is returned by Decompress when the input does not begin
	// with the expected magic number, or when the tree header is
	// well-formed at the bit level but describes an impossible trie.
	ErrFormat = errors.New("huffpack: input is not a huffpack stream")

	// ErrTruncatedHeader is returned by Decompress when the input ends
	// while the tree header is still being read.
	ErrTruncatedHeader = errors.New("huffpack: truncated tree header")

	// ErrTruncatedPayload is returned by Decompress when the input ends
	// before the end-of-block code has been reached.
	ErrTruncatedPayload = errors.New("huffpack: truncated payload")
)
