package magic

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/catalog"
	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
)

func randomKernel(t *testing.T, size int) []byte {
	t.Helper()
	buf := make([]byte, size)
	rand.New(rand.NewSource(int64(size))).Read(buf)
	return buf
}

func TestSectionRoundTrip(t *testing.T) {
	kernel := randomKernel(t, TextBlobBase+0x400)

	for _, workers := range []int{1, 4, 0} {
		records, _, err := ParseSection(kernel, WithWorkers(workers))
		require.NoError(t, err)
		require.Len(t, records, RecordCount)

		out, err := SerializeSection(records, kernel, WithWorkers(workers))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(kernel, out), "workers=%d", workers)
	}
}

func TestParseAllOrderAndStride(t *testing.T) {
	const stride = RecordSize + 4
	buf := make([]byte, 8+stride*3)
	for i := 0; i < 3; i++ {
		buf[8+i*stride+offID] = byte(i + 1)
	}

	records, warnings, err := ParseAll(buf, 8, stride, 3)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	for i, r := range records {
		assert.Equal(t, uint16(i+1), r.ID)
	}
}

func TestParseAllSectionBounds(t *testing.T) {
	buf := make([]byte, SectionOffset+RecordSize*RecordCount-1)

	_, _, err := ParseSection(buf)
	var sectionErr *kerrors.SectionError
	require.True(t, errors.As(err, &sectionErr))
	assert.Equal(t, SectionOffset+RecordSize*RecordCount, sectionErr.Required)
	assert.Equal(t, len(buf), sectionErr.Available)
	assert.True(t, errors.Is(err, kerrors.ErrSectionBounds))

	_, _, err = ParseAll(buf, 0, RecordSize-1, 1)
	assert.Error(t, err, "stride smaller than a record")

	records, _, err := ParseAll(buf, 0, RecordSize, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCheckSectionHugeCounts(t *testing.T) {
	testCases := []struct {
		name   string
		offset int
		stride int
		count  int
	}{
		{name: "count wraps int", offset: 0, stride: RecordSize, count: math.MaxInt/RecordSize + 2},
		{name: "max count", offset: 0, stride: RecordSize, count: math.MaxInt},
		{name: "huge stride", offset: 0, stride: math.MaxInt / 2, count: 3},
		{name: "offset near max", offset: math.MaxInt - 10, stride: RecordSize, count: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 4096)
			err := CheckSection(len(buf), tc.offset, tc.stride, tc.count)
			var sectionErr *kerrors.SectionError
			require.True(t, errors.As(err, &sectionErr), "err=%v", err)
			assert.Equal(t, len(buf), sectionErr.Available)
			assert.Greater(t, sectionErr.Required, len(buf))

			assert.NotPanics(t, func() {
				_, _, err = ParseAll(buf, tc.offset, tc.stride, tc.count)
			})
			assert.True(t, errors.Is(err, kerrors.ErrSectionBounds))
		})
	}
}

func TestCheckSectionExactFit(t *testing.T) {
	const stride = RecordSize + 4
	bufLen := 16 + 2*stride + RecordSize

	require.NoError(t, CheckSection(bufLen, 16, stride, 3))
	assert.Error(t, CheckSection(bufLen-1, 16, stride, 3))
	require.NoError(t, CheckSection(bufLen, bufLen, stride, 0))
	assert.Error(t, CheckSection(bufLen, bufLen+1, stride, 0))
}

func TestParseAllWarningsSorted(t *testing.T) {
	buf := make([]byte, RecordSize*4)
	buf[3*RecordSize+offElement] = 0x05
	buf[1*RecordSize+offAttackType] = 0xFE

	_, warnings, err := ParseAll(buf, 0, RecordSize, 4, WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, RecordSize, warnings[0].Offset)
	assert.Equal(t, 3*RecordSize, warnings[1].Offset)

	_, _, err = ParseAll(buf, 0, RecordSize, 4, WithStrictEnums())
	assert.True(t, errors.Is(err, kerrors.ErrUnknownCode))
}

func TestSerializeAllLeavesOriginalUntouched(t *testing.T) {
	kernel := randomKernel(t, 1024)
	snapshot := append([]byte(nil), kernel...)

	records, _, err := ParseAll(kernel, 100, RecordSize, 5)
	require.NoError(t, err)
	for _, r := range records {
		r.Power = 0xAB
		r.SetAttackType(catalog.AttackTypeScan)
	}

	out, err := SerializeAll(records, kernel, 100, RecordSize)
	require.NoError(t, err)
	assert.Equal(t, snapshot, kernel, "caller buffer must not change")

	assert.Equal(t, kernel[:100], out[:100])
	assert.Equal(t, kernel[100+5*RecordSize:], out[100+5*RecordSize:])
	for i := 0; i < 5; i++ {
		assert.Equal(t, byte(0xAB), out[100+i*RecordSize+offPower])
		assert.Equal(t, byte(catalog.AttackTypeScan), out[100+i*RecordSize+offAttackType])
	}
}

func TestSerializeAllBounds(t *testing.T) {
	kernel := make([]byte, RecordSize*2)
	records := []*Record{NewRecord(), NewRecord(), NewRecord()}

	out, err := SerializeAll(records, kernel, 0, RecordSize)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, kerrors.ErrSectionBounds))

	_, err = SerializeAll([]*Record{nil}, kernel, 0, RecordSize)
	assert.Error(t, err)
}
