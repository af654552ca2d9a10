// Package cipher implements the per-byte text obfuscation used by every string
// stored in the kernel file.
//
// The cipher shifts three byte ranges (upper case, digits, lower case) and
// passes everything else through, so ciphered text has exactly the length of
// its plaintext.
package cipher

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
)

// Ciphered ranges, inclusive.
const (
	upperLo = 'D' // '@'+4
	upperHi = '^' // 'Z'+4
	digitLo = '!' // '0'-15
	digitHi = '*' // '9'-15
	lowerLo = '_' // 'a'-2
	lowerHi = 'x' // 'z'-2

	upperShift = 4
	digitShift = 15
	lowerShift = 2
)

// Decode deciphers a single byte.
func Decode(b byte) byte {
	switch {
	case b >= upperLo && b <= upperHi:
		return b - upperShift
	case b >= digitLo && b <= digitHi:
		return b + digitShift
	case b >= lowerLo && b <= lowerHi:
		return b + lowerShift
	default:
		return b
	}
}

// Encode ciphers a single byte. It is the exact inverse of Decode on the ranges
// Decode produces.
func Encode(b byte) byte {
	switch {
	case b >= upperLo-upperShift && b <= upperHi-upperShift:
		return b + upperShift
	case b >= digitLo+digitShift && b <= digitHi+digitShift:
		return b - digitShift
	case b >= lowerLo+lowerShift && b <= lowerHi+lowerShift:
		return b - lowerShift
	default:
		return b
	}
}

// InDecodeDomain reports whether Decode changes b.
func InDecodeDomain(b byte) bool {
	return (b >= upperLo && b <= upperHi) ||
		(b >= digitLo && b <= digitHi) ||
		(b >= lowerLo && b <= lowerHi)
}

// DecodeBytes deciphers data into a new slice of the same length.
func DecodeBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = Decode(b)
	}
	return out
}

// EncodeBytes ciphers data into a new slice of the same length.
func EncodeBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = Encode(b)
	}
	return out
}

// Decipher turns ciphered single-byte text into a Go string. Each deciphered
// byte is read as one Latin-1 character, so control bytes survive unchanged.
func Decipher(data []byte) string {
	plain := DecodeBytes(data)
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(plain)
	if err != nil {
		// every byte value has a Latin-1 mapping
		return string(plain)
	}
	return string(s)
}

// Cipher turns a Go string into ciphered single-byte text. Characters outside
// Latin-1 cannot be stored and yield ErrUnencodableText.
func Cipher(s string) ([]byte, error) {
	plain, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", kerrors.ErrUnencodableText, s, err)
	}
	return EncodeBytes(plain), nil
}
