package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/bitflags"
	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
)

func TestTableNames(t *testing.T) {
	testCases := []struct {
		name  string
		table *Table
		bit   int
		want  string
	}{
		{name: "target dead", table: TargetFlags, bit: TargetDead, want: "dead"},
		{name: "target unknown", table: TargetFlags, bit: 1, want: "unknown-1"},
		{name: "attack revive", table: AttackFlags, bit: AttackFlagRevive, want: "revive"},
		{name: "status curse", table: Statuses, bit: StatusCurse, want: "curse"},
		{name: "status zombie", table: Statuses, bit: StatusZombie, want: "zombie"},
		{name: "status unknown high", table: Statuses, bit: 47, want: "unknown-47"},
		{name: "element holy", table: ElementBits, bit: 7, want: "holy"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.table.NameForBit(tc.bit))

			bit, ok := tc.table.BitForName(tc.want)
			require.True(t, ok)
			assert.Equal(t, tc.bit, bit)
		})
	}
}

func TestTableRoundTripsEveryBit(t *testing.T) {
	for _, table := range []*Table{TargetFlags, AttackFlags, ElementBits, Statuses} {
		for bit := 0; bit < table.Width(); bit++ {
			got, ok := table.BitForName(table.NameForBit(bit))
			require.True(t, ok, "%s bit %d", table.Kind(), bit)
			assert.Equal(t, bit, got)
		}
	}
}

func TestTableRejectsForeignNames(t *testing.T) {
	_, ok := Statuses.BitForName("unknown-9") // bit 9 is curse, not unknown
	assert.False(t, ok)
	_, ok = Statuses.BitForName("unknown-48")
	assert.False(t, ok)
	_, ok = TargetFlags.BitForName("curse")
	assert.False(t, ok)
}

func TestAttackTypeLookups(t *testing.T) {
	assert.Equal(t, 37, AttackTypeCount)

	got, ok := LenientAttackType(2)
	assert.True(t, ok)
	assert.Equal(t, AttackTypeMagic, got)

	got, ok = LenientAttackType(200)
	assert.False(t, ok)
	assert.Equal(t, AttackTypeNone, got)

	_, err := StrictAttackType(37)
	var strictErr *kerrors.StrictDecodeError
	require.True(t, errors.As(err, &strictErr))
	assert.Equal(t, uint8(37), strictErr.Code)
	assert.True(t, errors.Is(err, kerrors.ErrUnknownCode))

	got, err = StrictAttackType(36)
	require.NoError(t, err)
	assert.Equal(t, AttackTypePhysicalIgnoreVIT, got)

	parsed, err := ParseAttackType("curative-magic")
	require.NoError(t, err)
	assert.Equal(t, AttackTypeCurativeMagic, parsed)
	_, err = ParseAttackType("bogus")
	assert.Error(t, err)
}

func TestElementLookups(t *testing.T) {
	testCases := []struct {
		name   string
		code   uint8
		want   Element
		wantOK bool
	}{
		{name: "none", code: 0, want: ElementNone, wantOK: true},
		{name: "fire", code: 1, want: ElementFire, wantOK: true},
		{name: "holy", code: 0x80, want: ElementHoly, wantOK: true},
		{name: "combined bits", code: 0x03, want: ElementNone, wantOK: false},
		{name: "all bits", code: 0xFF, want: ElementNone, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := LenientElement(tc.code)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)

			_, err := StrictElement(tc.code)
			assert.Equal(t, tc.wantOK, err == nil)
		})
	}

	e, err := ParseElement("water")
	require.NoError(t, err)
	assert.Equal(t, ElementWater, e)
	assert.Equal(t, "element-0x03", Element(3).String())
}

func TestJunctionTables(t *testing.T) {
	wantDefense := []int{32, 33, 34, 35, 36, 37, 38, 0, 2, 3, 9, 14, 15}
	for pos, status := range wantDefense {
		got, ok := JunctionDefense.StatusForPosition(pos)
		require.True(t, ok)
		assert.Equal(t, status, got, "defense position %d", pos)

		if pos == 10 {
			_, ok := JunctionAttack.StatusForPosition(pos)
			assert.False(t, ok, "attack position 10 is unused")
			continue
		}
		got, ok = JunctionAttack.StatusForPosition(pos)
		require.True(t, ok)
		assert.Equal(t, status, got, "attack position %d", pos)
	}

	assert.Equal(t, uint16(0x1FFF), JunctionDefense.Mask())
	assert.Equal(t, uint16(0x1BFF), JunctionAttack.Mask())
}

func TestJunctionPositionForStatus(t *testing.T) {
	for _, table := range []*JunctionTable{JunctionDefense, JunctionAttack} {
		for pos := 0; pos < JunctionWordBits; pos++ {
			status, ok := table.StatusForPosition(pos)
			if !ok {
				continue
			}
			got, ok := table.PositionForStatus(status)
			require.True(t, ok, "%s status %d", table.Name(), status)
			assert.Equal(t, pos, got, "%s status %d", table.Name(), status)
		}
	}

	pos, ok := JunctionDefense.PositionForStatus(StatusCurse)
	require.True(t, ok)
	assert.Equal(t, 10, pos)
	_, ok = JunctionAttack.PositionForStatus(StatusCurse)
	assert.False(t, ok)
	_, ok = JunctionDefense.PositionForStatus(StatusHaste)
	assert.False(t, ok)
}

func TestJunctionDecodeEncodeFidelity(t *testing.T) {
	for _, table := range []*JunctionTable{JunctionDefense, JunctionAttack} {
		for pos := 0; pos < JunctionWordBits; pos++ {
			status, ok := table.StatusForPosition(pos)
			if !ok {
				continue
			}
			word := uint16(1) << uint(pos)
			decoded := table.Decode(word)
			assert.Equal(t, []int{status}, decoded.Active(), "%s position %d", table.Name(), pos)
			assert.Equal(t, word, table.Encode(decoded), "%s position %d", table.Name(), pos)
		}

		assert.Equal(t, table.Mask(), table.Encode(table.Decode(0xFFFF)))
	}
}

func TestJunctionDropsUnrepresentableStatuses(t *testing.T) {
	curse, err := bitflags.New48().With(StatusCurse, true)
	require.NoError(t, err)

	assert.Zero(t, JunctionAttack.Encode(curse), "curse is absent from the attack table")
	assert.True(t, JunctionAttack.Decode(JunctionAttack.Encode(curse)).IsEmpty())
	assert.Equal(t, uint16(1<<10), JunctionDefense.Encode(curse))

	haste, err := bitflags.New48().With(StatusHaste, true)
	require.NoError(t, err)
	assert.Zero(t, JunctionDefense.Encode(haste))
}

func TestJunctionMergeKeepsUnmappedBits(t *testing.T) {
	sleep, err := bitflags.New48().With(StatusSleep, true)
	require.NoError(t, err)

	// bit 10 and bits 13-15 are not mapped by the attack table
	word := uint16(0xE400 | 0x0001)
	merged := JunctionAttack.Merge(word, sleep)
	assert.Equal(t, uint16(0xE400|1<<7), merged)

	assert.Equal(t, uint16(0xE000|1<<7), JunctionDefense.Merge(word, sleep))
}

func TestStatAndGFNames(t *testing.T) {
	assert.Len(t, AllStats(), 9)
	assert.Equal(t, "luck", StatLuck.String())
	assert.Len(t, AllGFs(), 16)
	assert.Equal(t, "quezacotl", GFQuezacotl.String())
	assert.Equal(t, "eden", GFEden.String())
}
