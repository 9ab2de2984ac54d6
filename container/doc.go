// Package container implements the fano binary container.
//
// A container holds everything needed to decode a Shannon–Fano payload: the
// serialized code tree and the packed payload bits, behind a fixed 36-byte
// header. All multi-byte integers are big-endian.
//
//	offset  size  field
//	0       4     magic "SFNO"
//	4       1     version (1)
//	5       1     flags: bits 0-3 payload compression, bit 4 rune symbols
//	6       2     reserved, zero
//	8       8     original length (symbol count)
//	16      8     payload bit count
//	24      8     xxHash64 of the original input bytes
//	32      4     serialized tree length n
//	36      n     serialized tree (see package treefmt)
//	36+n    ...   payload bytes, compressed with the flagged codec
//
// An empty input produces a header with zero lengths and nothing after it.
package container
