package huffpack

// Symbol represents a value in the coding alphabet.  Values 0 through 255
// are literal byte values; 256 is the reserved end-of-block marker.
type Symbol int32

// AlphabetSize is the number of distinct Symbols: the 256 byte values plus
// the end-of-block marker.
const AlphabetSize = 257

// EOB is the synthetic end-of-block marker.  It never occurs in source
// data; its code is appended once to every payload so the decoder knows
// where the payload ends without an explicit length field.
const EOB = Symbol(256)

// bitsPerWord is the width of one source symbol on the wire.
const bitsPerWord = 8

// symbolBits is the width of a serialized Symbol: the alphabet has one more
// value than fits in a byte.
const symbolBits = bitsPerWord + 1
