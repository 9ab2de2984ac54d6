package code

// Symbol is one unit of the input alphabet: a byte value or a Unicode code
// point. Negative symbols are not valid.
type Symbol int32

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)
