// Package code implements Shannon–Fano code construction.
//
// Construction proceeds in three steps:
//
//  1. CountFrequencies counts how often every Symbol occurs.
//  2. BuildTree sorts the symbols by descending weight and repeatedly splits
//     the list where the two halves are closest in total weight, producing a
//     full binary Tree whose leaves are the symbols.
//  3. NewTable walks the tree and assigns each symbol its codeword, 0 for a
//     left edge and 1 for a right edge.
//
// Trees are stored in an arena and referenced by NodeID; both the builder and
// every tree walk use explicit stacks, so alphabets of any size are handled
// without deep call stacks.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Shannon%E2%80%93Fano_coding>
package code
