// Package catalog holds the static lookup tables of the kernel magic format:
// flag and status bit names, attack types, elements, junction stats, guardian
// forces and the junction status bit mappings.
//
// Every table is built once at init and never changes.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

const unknownPrefix = "unknown-"

// Table maps the bit indices of a fixed-width flag field to symbolic names.
type Table struct {
	kind   string
	names  []string
	byName map[string]int
}

func newTable(kind string, width int, known map[int]string) *Table {
	t := &Table{
		kind:   kind,
		names:  make([]string, width),
		byName: make(map[string]int, len(known)),
	}
	for bit, name := range known {
		if bit < 0 || bit >= width {
			panic(fmt.Sprintf("catalog: %s bit %d outside width %d", kind, bit, width))
		}
		t.names[bit] = name
		t.byName[name] = bit
	}
	return t
}

// Kind names the flag field this table describes.
func (t *Table) Kind() string { return t.kind }

// Width is the number of bits in the field.
func (t *Table) Width() int { return len(t.names) }

// NameForBit returns the symbolic name of bit i, or "unknown-i" when the bit has
// no catalog entry (including indices outside the width).
func (t *Table) NameForBit(i int) string {
	if i >= 0 && i < len(t.names) && t.names[i] != "" {
		return t.names[i]
	}
	return unknownPrefix + strconv.Itoa(i)
}

// BitForName resolves a symbolic name, accepting the "unknown-N" placeholders
// NameForBit produces so that names round-trip losslessly.
func (t *Table) BitForName(name string) (int, bool) {
	if bit, ok := t.byName[name]; ok {
		return bit, true
	}
	if rest, ok := strings.CutPrefix(name, unknownPrefix); ok {
		bit, err := strconv.Atoi(rest)
		if err == nil && bit >= 0 && bit < len(t.names) && t.names[bit] == "" {
			return bit, true
		}
	}
	return 0, false
}

// Known reports whether bit i has a catalog entry.
func (t *Table) Known(i int) bool {
	return i >= 0 && i < len(t.names) && t.names[i] != ""
}

// Names maps each index in bits to its name.
func (t *Table) Names(bits []int) []string {
	out := make([]string, len(bits))
	for i, b := range bits {
		out[i] = t.NameForBit(b)
	}
	return out
}
