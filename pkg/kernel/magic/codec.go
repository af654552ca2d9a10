package magic

import (
	"encoding/binary"
	"fmt"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/bitflags"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/catalog"
	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
)

// Warning records an enum code the catalog does not know. The record still
// holds the original code; only its resolved view fell back to "none".
type Warning struct {
	Offset int    // Absolute offset of the record
	Field  string // "attack type" or "element"
	Code   uint8
}

func (w Warning) String() string {
	return fmt.Sprintf("record at 0x%04X: unknown %s code 0x%02X", w.Offset, w.Field, w.Code)
}

// ParseRecord decodes the 60 bytes at offset. Unknown attack type and element
// codes resolve to none and are reported as warnings.
func ParseRecord(buf []byte, offset int) (*Record, []Warning, error) {
	data, err := window(buf, offset)
	if err != nil {
		return nil, nil, err
	}

	r := unpack(data)

	var warnings []Warning
	var ok bool
	if r.AttackType, ok = catalog.LenientAttackType(r.AttackTypeCode); !ok {
		warnings = append(warnings, Warning{Offset: offset, Field: "attack type", Code: r.AttackTypeCode})
	}
	if r.Element, ok = catalog.LenientElement(r.ElementCode); !ok {
		warnings = append(warnings, Warning{Offset: offset, Field: "element", Code: r.ElementCode})
	}
	return r, warnings, nil
}

// ParseRecordStrict decodes the 60 bytes at offset and fails on any enum code
// the catalog does not know.
func ParseRecordStrict(buf []byte, offset int) (*Record, error) {
	data, err := window(buf, offset)
	if err != nil {
		return nil, err
	}

	r := unpack(data)
	if r.AttackType, err = catalog.StrictAttackType(r.AttackTypeCode); err != nil {
		return nil, fmt.Errorf("record at 0x%04X: %w", offset, err)
	}
	if r.Element, err = catalog.StrictElement(r.ElementCode); err != nil {
		return nil, fmt.Errorf("record at 0x%04X: %w", offset, err)
	}
	return r, nil
}

// SerializeRecord encodes r into exactly RecordSize bytes.
func SerializeRecord(r *Record) [RecordSize]byte {
	var buf [RecordSize]byte
	r.packInto(buf[:])
	return buf
}

// Pack serializes the record to a new RecordSize-byte slice.
func (r *Record) Pack() []byte {
	buf := make([]byte, RecordSize)
	r.packInto(buf)
	return buf
}

func window(buf []byte, offset int) ([]byte, error) {
	if offset < 0 || len(buf) < RecordSize || offset > len(buf)-RecordSize {
		return nil, &kerrors.RangeError{Offset: offset, Need: RecordSize, Have: max(len(buf)-max(offset, 0), 0)}
	}
	return buf[offset : offset+RecordSize], nil
}

// unpack reads every field of a RecordSize-byte window. Enum views are left
// for the caller to resolve.
func unpack(data []byte) *Record {
	r := &Record{
		NameOffset:     binary.LittleEndian.Uint16(data[offName:]),
		DescOffset:     binary.LittleEndian.Uint16(data[offDesc:]),
		ID:             binary.LittleEndian.Uint16(data[offID:]),
		AnimationID:    data[offAnimation],
		AttackTypeCode: data[offAttackType],
		Power:          data[offPower],
		Reserved1:      data[offReserved1],
		Targets:        bitflags.New8(data[offTargets]),
		AttackFlags:    bitflags.New8(data[offAttackFlags]),
		DrawResist:     data[offDrawResist],
		HitCount:       data[offHitCount],
		ElementCode:    data[offElement],
		Reserved2:      data[offReserved2],
		Statuses: bitflags.FromParts(
			binary.LittleEndian.Uint32(data[offStatusLow:]),
			binary.LittleEndian.Uint16(data[offStatusHigh:]),
		),
		StatusEnabler: data[offStatusEnabler],
		JunctionElemental: JunctionElemental{
			AttackElement:   data[offJunctionElemental],
			AttackValue:     data[offJunctionElemental+1],
			DefenseElements: bitflags.New8(data[offJunctionElemental+2]),
			DefenseValue:    data[offJunctionElemental+3],
		},
		JunctionStatus: JunctionStatus{
			AttackValue:  data[offJunctionStatus],
			DefenseValue: data[offJunctionStatus+1],
			AttackWord:   binary.LittleEndian.Uint16(data[offJunctionStatus+2:]),
			DefenseWord:  binary.LittleEndian.Uint16(data[offJunctionStatus+4:]),
		},
		Reserved3: binary.LittleEndian.Uint16(data[offReserved3:]),
	}
	copy(r.JunctionStats[:], data[offJunctionStats:offJunctionStats+catalog.StatCount])
	copy(r.GFCompatibility[:], data[offGFCompatibility:offGFCompatibility+catalog.GFCount])
	return r
}

// packInto writes every field into a RecordSize-byte slice.
func (r *Record) packInto(buf []byte) {
	_ = buf[RecordSize-1]

	binary.LittleEndian.PutUint16(buf[offName:], r.NameOffset)
	binary.LittleEndian.PutUint16(buf[offDesc:], r.DescOffset)
	binary.LittleEndian.PutUint16(buf[offID:], r.ID)
	buf[offAnimation] = r.AnimationID
	buf[offAttackType] = r.AttackTypeCode
	buf[offPower] = r.Power
	buf[offReserved1] = r.Reserved1
	buf[offTargets] = r.Targets.Byte()
	buf[offAttackFlags] = r.AttackFlags.Byte()
	buf[offDrawResist] = r.DrawResist
	buf[offHitCount] = r.HitCount
	buf[offElement] = r.ElementCode
	buf[offReserved2] = r.Reserved2

	low, high := r.Statuses.ToParts()
	binary.LittleEndian.PutUint32(buf[offStatusLow:], low)
	binary.LittleEndian.PutUint16(buf[offStatusHigh:], high)
	buf[offStatusEnabler] = r.StatusEnabler

	copy(buf[offJunctionStats:offJunctionStats+catalog.StatCount], r.JunctionStats[:])

	buf[offJunctionElemental] = r.JunctionElemental.AttackElement
	buf[offJunctionElemental+1] = r.JunctionElemental.AttackValue
	buf[offJunctionElemental+2] = r.JunctionElemental.DefenseElements.Byte()
	buf[offJunctionElemental+3] = r.JunctionElemental.DefenseValue

	buf[offJunctionStatus] = r.JunctionStatus.AttackValue
	buf[offJunctionStatus+1] = r.JunctionStatus.DefenseValue
	binary.LittleEndian.PutUint16(buf[offJunctionStatus+2:], r.JunctionStatus.AttackWord)
	binary.LittleEndian.PutUint16(buf[offJunctionStatus+4:], r.JunctionStatus.DefenseWord)

	copy(buf[offGFCompatibility:offGFCompatibility+catalog.GFCount], r.GFCompatibility[:])
	binary.LittleEndian.PutUint16(buf[offReserved3:], r.Reserved3)
}
