// Package magic implements the 60-byte spell record codec of the kernel magic
// section and batch access to the whole section.
package magic

import (
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/bitflags"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/catalog"
)

// Record is one spell's complete binary-backed state.
//
// Enum fields keep their on-disk code next to the resolved value; serialization
// writes the code. Reserved fields have no known meaning and are carried
// through unchanged.
type Record struct {
	NameOffset uint16 // Text blob offset of the name
	DescOffset uint16 // Text blob offset of the description
	ID         uint16

	AnimationID    uint8
	AttackTypeCode uint8
	AttackType     catalog.AttackType // Lenient view of AttackTypeCode
	Power          uint8
	Reserved1      uint8

	Targets     bitflags.Set // 8 bits, catalog.TargetFlags
	AttackFlags bitflags.Set // 8 bits, catalog.AttackFlags
	DrawResist  uint8
	HitCount    uint8
	ElementCode uint8
	Element     catalog.Element // Lenient view of ElementCode
	Reserved2   uint8

	Statuses      bitflags.Set // 48 bits, catalog.Statuses
	StatusEnabler uint8

	JunctionStats     [catalog.StatCount]uint8
	JunctionElemental JunctionElemental
	JunctionStatus    JunctionStatus
	GFCompatibility   [catalog.GFCount]uint8

	Reserved3 uint16
}

// JunctionElemental is the 4-byte elemental junction block at 0x20.
type JunctionElemental struct {
	AttackElement   uint8 // Element code
	AttackValue     uint8
	DefenseElements bitflags.Set // 8 bits, catalog.ElementBits
	DefenseValue    uint8
}

// JunctionStatus is the 6-byte status junction block at 0x24. The two words
// are kept verbatim; use the Record accessors for the decoded status view.
type JunctionStatus struct {
	AttackValue  uint8
	DefenseValue uint8
	AttackWord   uint16
	DefenseWord  uint16
}

// NewRecord returns a zeroed record with correctly sized flag sets.
func NewRecord() *Record {
	return &Record{
		Targets:     bitflags.New8(0),
		AttackFlags: bitflags.New8(0),
		Statuses:    bitflags.New48(),
		JunctionElemental: JunctionElemental{
			DefenseElements: bitflags.New8(0),
		},
	}
}

// Clone returns an independent copy. Record holds only values, so a shallow
// copy is enough.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// SetAttackType stores t and its code.
func (r *Record) SetAttackType(t catalog.AttackType) {
	r.AttackType = t
	r.AttackTypeCode = uint8(t)
}

// SetElement stores e and its code.
func (r *Record) SetElement(e catalog.Element) {
	r.Element = e
	r.ElementCode = uint8(e)
}

// AttackElement resolves the junction attack element leniently.
func (r *Record) AttackElement() catalog.Element {
	e, _ := catalog.LenientElement(r.JunctionElemental.AttackElement)
	return e
}

// Stat returns the junction bonus for s.
func (r *Record) Stat(s catalog.Stat) uint8 {
	return r.JunctionStats[s]
}

// Compatibility returns the guardian force compatibility value for g.
func (r *Record) Compatibility(g catalog.GF) uint8 {
	return r.GFCompatibility[g]
}

// JunctionAttackStatuses decodes the junction attack word.
func (r *Record) JunctionAttackStatuses() bitflags.Set {
	return catalog.JunctionAttack.Decode(r.JunctionStatus.AttackWord)
}

// JunctionDefenseStatuses decodes the junction defense word.
func (r *Record) JunctionDefenseStatuses() bitflags.Set {
	return catalog.JunctionDefense.Decode(r.JunctionStatus.DefenseWord)
}

// SetJunctionAttackStatuses re-encodes the attack word from s. Statuses that
// cannot be junctioned for attack are dropped; unmapped word bits are kept.
func (r *Record) SetJunctionAttackStatuses(s bitflags.Set) {
	r.JunctionStatus.AttackWord = catalog.JunctionAttack.Merge(r.JunctionStatus.AttackWord, s)
}

// SetJunctionDefenseStatuses re-encodes the defense word from s.
func (r *Record) SetJunctionDefenseStatuses(s bitflags.Set) {
	r.JunctionStatus.DefenseWord = catalog.JunctionDefense.Merge(r.JunctionStatus.DefenseWord, s)
}

// StatusNames lists the active status effects by name.
func (r *Record) StatusNames() []string {
	return catalog.Statuses.Names(r.Statuses.Active())
}

// TargetNames lists the active target flags by name.
func (r *Record) TargetNames() []string {
	return catalog.TargetFlags.Names(r.Targets.Active())
}

// AttackFlagNames lists the active attack flags by name.
func (r *Record) AttackFlagNames() []string {
	return catalog.AttackFlags.Names(r.AttackFlags.Active())
}
