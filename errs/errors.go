// Package errs defines the sentinel errors returned by fano packages.
//
// Errors are wrapped with context using fmt.Errorf and "%w", so callers
// should test for them with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is returned when encoding a symbol that has no codeword.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrTruncatedStream is returned when a payload bit stream ends in the
	// middle of a codeword, or does not match the code tree.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrCorruptTree is returned when a serialized code tree is malformed.
	ErrCorruptTree = errors.New("corrupt code tree")

	// ErrFormat is returned when container bytes are malformed or truncated.
	ErrFormat = errors.New("invalid container format")

	// ErrInvalidMagic is returned when the container magic tag does not match.
	ErrInvalidMagic = fmt.Errorf("%w: invalid magic tag", ErrFormat)

	// ErrUnsupportedVersion is returned for containers written by an unknown format version.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported version", ErrFormat)

	// ErrSymbolOutOfRange is returned when a symbol does not fit the configured symbol width.
	ErrSymbolOutOfRange = errors.New("symbol out of range")

	// ErrInvalidUTF8 is returned when rune mode is requested for input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

	// ErrChecksumMismatch is returned when decoded data does not match the stored checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrPayloadSize is returned when a compressed payload does not expand to
	// the size recorded for it.
	ErrPayloadSize = errors.New("payload size mismatch")

	// ErrInvalidCompression is returned for an unknown envelope compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
