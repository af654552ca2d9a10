// Package errors holds the error taxonomy shared by the kernel codec packages.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Codec errors 📦
	ErrShortBuffer     = errors.New("❌ buffer too short for record")
	ErrSectionBounds   = errors.New("❌ section exceeds buffer")
	ErrIndexOutOfRange = errors.New("❌ bit index out of range")
	ErrUnknownCode     = errors.New("❌ unknown enum code")

	// Text errors 🔤
	ErrUnencodableText = errors.New("❌ text not representable in single-byte charset")

	// Layout errors 📐
	ErrPrimaryMissing = errors.New("❌ primary language text missing")
	ErrOffsetOverflow = errors.New("❌ text offset exceeds 16-bit field")
	ErrDuplicateSpell = errors.New("❌ spell index listed more than once")
)

// RangeError reports a fixed-size read or write that does not fit its buffer.
type RangeError struct {
	Offset int
	Need   int
	Have   int
	Err    error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: offset %d needs %d bytes, have %d", e.sentinel(), e.Offset, e.Need, e.Have)
}

func (e *RangeError) Unwrap() error { return e.sentinel() }

func (e *RangeError) sentinel() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrShortBuffer
}

// SectionError reports a batch section that would run past the end of the buffer.
type SectionError struct {
	Offset    int
	Count     int
	Stride    int
	Required  int
	Available int
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%v: %d records of %d bytes at 0x%04X require %d bytes, have %d",
		ErrSectionBounds, e.Count, e.Stride, e.Offset, e.Required, e.Available)
}

func (e *SectionError) Unwrap() error { return ErrSectionBounds }

// StrictDecodeError is returned by strict enum lookups for codes outside the catalog.
type StrictDecodeError struct {
	Kind string
	Code uint8
}

func (e *StrictDecodeError) Error() string {
	return fmt.Sprintf("%v: %s code 0x%02X", ErrUnknownCode, e.Kind, e.Code)
}

func (e *StrictDecodeError) Unwrap() error { return ErrUnknownCode }

// ValidationError lists every spell index whose primary-language text is missing.
type ValidationError struct {
	Language     string
	SpellIndices []int
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.SpellIndices))
	for i, idx := range e.SpellIndices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return fmt.Sprintf("%v: language %q for spells [%s]", ErrPrimaryMissing, e.Language, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrPrimaryMissing }
