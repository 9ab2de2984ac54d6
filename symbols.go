package fano

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/fano/code"
	"github.com/arloliu/fano/errs"
	"github.com/arloliu/fano/format"
)

// toSymbols splits data into symbols of the given width.
func toSymbols(data []byte, width format.SymbolWidth) ([]code.Symbol, error) {
	if width == format.SymbolWidthByte {
		syms := make([]code.Symbol, len(data))
		for i, b := range data {
			syms[i] = code.Symbol(b)
		}

		return syms, nil
	}

	if !utf8.Valid(data) {
		return nil, errs.ErrInvalidUTF8
	}
	syms := make([]code.Symbol, 0, utf8.RuneCount(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		syms = append(syms, code.Symbol(r))
		data = data[size:]
	}

	return syms, nil
}

// fromSymbols reverses toSymbols.
func fromSymbols(syms []code.Symbol, width format.SymbolWidth) ([]byte, error) {
	if width == format.SymbolWidthByte {
		out := make([]byte, len(syms))
		for i, s := range syms {
			out[i] = byte(s)
		}

		return out, nil
	}

	out := make([]byte, 0, len(syms))
	for _, s := range syms {
		if !utf8.ValidRune(rune(s)) {
			return nil, fmt.Errorf("%w: %#x is not a valid code point", errs.ErrCorruptTree, s)
		}
		out = utf8.AppendRune(out, rune(s))
	}

	return out, nil
}
