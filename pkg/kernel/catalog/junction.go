package catalog

import (
	"fmt"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/bitflags"
)

// JunctionWordBits is the number of meaningful positions in a junction status word.
const JunctionWordBits = 13

const unmapped = -1

// JunctionTable maps the positions of a 13-bit junction status word to bits
// of the 48-bit status set. The positions are not a contiguous slice of the
// status set, and a table may leave positions unused.
type JunctionTable struct {
	name      string
	positions [JunctionWordBits]int
	byStatus  map[int]int
}

func newJunctionTable(name string, positions [JunctionWordBits]int) *JunctionTable {
	t := &JunctionTable{
		name:      name,
		positions: positions,
		byStatus:  make(map[int]int, JunctionWordBits),
	}
	for pos, status := range positions {
		if status == unmapped {
			continue
		}
		if _, dup := t.byStatus[status]; dup {
			panic(fmt.Sprintf("catalog: %s junction table maps status %d twice", name, status))
		}
		t.byStatus[status] = pos
	}
	return t
}

var (
	// JunctionDefense maps junction defense word positions to status bits.
	JunctionDefense = newJunctionTable("defense", [JunctionWordBits]int{
		StatusDeath, StatusPoison, StatusPetrify, StatusDarkness, StatusSilence, StatusBerserk, StatusZombie,
		StatusSleep, StatusSlow, StatusStop, StatusCurse, StatusConfuse, StatusDrain,
	})

	// JunctionAttack is JunctionDefense with position 10 unused: curse cannot
	// be junctioned in the attack direction.
	JunctionAttack = newJunctionTable("attack", [JunctionWordBits]int{
		StatusDeath, StatusPoison, StatusPetrify, StatusDarkness, StatusSilence, StatusBerserk, StatusZombie,
		StatusSleep, StatusSlow, StatusStop, unmapped, StatusConfuse, StatusDrain,
	})
)

// Name identifies the table direction.
func (t *JunctionTable) Name() string { return t.name }

// StatusForPosition returns the status bit for word position pos.
func (t *JunctionTable) StatusForPosition(pos int) (int, bool) {
	if pos < 0 || pos >= JunctionWordBits || t.positions[pos] == unmapped {
		return 0, false
	}
	return t.positions[pos], true
}

// PositionForStatus returns the word position that carries status bit s.
func (t *JunctionTable) PositionForStatus(s int) (int, bool) {
	pos, ok := t.byStatus[s]
	return pos, ok
}

// Mask has a bit set for every word position the table maps.
func (t *JunctionTable) Mask() uint16 {
	var m uint16
	for pos, status := range t.positions {
		if status != unmapped {
			m |= 1 << uint(pos)
		}
	}
	return m
}

// Decode expands a junction word into a 48-bit status set. Word bits without a
// table entry are ignored.
func (t *JunctionTable) Decode(word uint16) bitflags.Set {
	b := bitflags.NewBuilder(bitflags.Width48)
	for pos, status := range t.positions {
		if status == unmapped || word&(1<<uint(pos)) == 0 {
			continue
		}
		// status indices come from the catalog and are always < 48
		_ = b.Set(status, true)
	}
	return b.Build()
}

// Encode packs the representable bits of a status set into a junction word.
// Status bits the table has no position for are dropped.
func (t *JunctionTable) Encode(statuses bitflags.Set) uint16 {
	var word uint16
	for _, status := range statuses.Active() {
		if pos, ok := t.PositionForStatus(status); ok {
			word |= 1 << uint(pos)
		}
	}
	return word
}

// Merge re-encodes statuses into word, keeping every word bit the table does
// not map exactly as it was.
func (t *JunctionTable) Merge(word uint16, statuses bitflags.Set) uint16 {
	return word&^t.Mask() | t.Encode(statuses)
}
