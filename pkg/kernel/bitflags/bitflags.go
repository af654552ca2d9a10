// Package bitflags implements fixed-width boolean-per-bit sets.
//
// A Set is a value: every mutation returns a new Set, so a set taken from a
// parsed record can be handed out without aliasing. Builder is the mutable
// counterpart used while assembling a set bit by bit.
package bitflags

import (
	"fmt"
	"math/bits"

	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
)

// Widths used by the kernel format.
const (
	Width8  = 8
	Width48 = 48

	maxWidth = 64
)

// Set is an immutable fixed-width bit set. The zero value is an empty set of width 0.
type Set struct {
	width uint8
	bits  uint64
}

// New returns an empty set of the given width (1..64). It panics on any other
// width; widths are fixed by the record layout, not by input data.
func New(width int) Set {
	if width < 1 || width > maxWidth {
		panic(fmt.Sprintf("bitflags: unsupported width %d", width))
	}
	return Set{width: uint8(width)}
}

// New8 returns an 8-bit set holding b.
func New8(b byte) Set {
	return Set{width: Width8, bits: uint64(b)}
}

// New48 returns an empty 48-bit set.
func New48() Set {
	return Set{width: Width48}
}

// FromBits builds a set of the given width, dropping bits above the width.
func FromBits(width int, v uint64) Set {
	s := New(width)
	s.bits = v & s.mask()
	return s
}

// FromParts joins the two on-disk halves of a 48-bit set. Bit 32 is the first
// bit of high.
func FromParts(low uint32, high uint16) Set {
	return Set{width: Width48, bits: uint64(low) | uint64(high)<<32}
}

// ToParts splits a 48-bit set strictly at bit 32.
func (s Set) ToParts() (uint32, uint16) {
	return uint32(s.bits), uint16(s.bits >> 32)
}

// Width returns the number of addressable bits.
func (s Set) Width() int { return int(s.width) }

// Bits returns the raw bit pattern.
func (s Set) Bits() uint64 { return s.bits }

// Byte returns the low 8 bits.
func (s Set) Byte() byte { return byte(s.bits) }

// Get reports whether bit i is set.
func (s Set) Get(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}
	return s.bits&(1<<uint(i)) != 0, nil
}

// Has is Get without the range error; out-of-range indices report false.
func (s Set) Has(i int) bool {
	ok, err := s.Get(i)
	return err == nil && ok
}

// With returns a copy of s with bit i set to v.
func (s Set) With(i int, v bool) (Set, error) {
	if err := s.check(i); err != nil {
		return s, err
	}
	if v {
		s.bits |= 1 << uint(i)
	} else {
		s.bits &^= 1 << uint(i)
	}
	return s, nil
}

// Active returns the indices of all set bits in ascending order.
func (s Set) Active() []int {
	out := make([]int, 0, bits.OnesCount64(s.bits))
	for v := s.bits; v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}
	return out
}

// IsEmpty reports whether no bit is set.
func (s Set) IsEmpty() bool { return s.bits == 0 }

// Len returns the number of set bits.
func (s Set) Len() int { return bits.OnesCount64(s.bits) }

// Equal reports bit-pattern and width equality. It matches ==.
func (s Set) Equal(o Set) bool { return s == o }

func (s Set) String() string {
	return fmt.Sprintf("%0*b", s.width, s.bits)
}

func (s Set) mask() uint64 {
	if s.width == maxWidth {
		return ^uint64(0)
	}
	return 1<<s.width - 1
}

func (s Set) check(i int) error {
	if i < 0 || i >= int(s.width) {
		return fmt.Errorf("%w: index %d, width %d", kerrors.ErrIndexOutOfRange, i, s.width)
	}
	return nil
}

// Builder assembles a Set in place.
type Builder struct {
	set Set
}

// NewBuilder returns a builder for an empty set of the given width.
func NewBuilder(width int) *Builder {
	return &Builder{set: New(width)}
}

// BuilderFrom starts a builder from an existing set.
func BuilderFrom(s Set) *Builder {
	return &Builder{set: s}
}

// Set sets bit i to v.
func (b *Builder) Set(i int, v bool) error {
	next, err := b.set.With(i, v)
	if err != nil {
		return err
	}
	b.set = next
	return nil
}

// Build returns the assembled set. The builder may keep being used.
func (b *Builder) Build() Set { return b.set }
