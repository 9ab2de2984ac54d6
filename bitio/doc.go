// Package bitio provides bit sequences and the byte packing used by fano.
//
// A Bits value is an ordered sequence of binary digits with an explicit
// length. Bits are stored most significant bit first within each byte, and
// any bits beyond the length are always zero, so two sequences are equal
// exactly when their lengths and packed bytes are equal.
//
// Packing comes in two forms:
//
//   - Pack/Unpack store the bit count out of band (the container header).
//   - PackWithPadding/UnpackWithPadding prefix the bytes with a padding
//     marker (0-7) so the sequence is self-describing.
package bitio
