package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/cipher"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

func ciphered(t *testing.T, s string) []byte {
	t.Helper()
	b, err := cipher.Cipher(s)
	require.NoError(t, err)
	return b
}

func TestReadString(t *testing.T) {
	blob := append(ciphered(t, "Fire"), 0)
	blob = append(blob, ciphered(t, "Deals fire damage")...)
	blob = append(blob, 0)

	testCases := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "first string", offset: 0, want: "Fire"},
		{name: "second string", offset: 5, want: "Deals fire damage"},
		{name: "mid string", offset: 2, want: "re"},
		{name: "at terminator", offset: 4, want: ""},
		{name: "negative", offset: -1, want: ""},
		{name: "at length", offset: len(blob), want: ""},
		{name: "past length", offset: len(blob) + 10, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReadString(blob, tc.offset))
		})
	}
}

func TestReadStringCapsUnterminated(t *testing.T) {
	blob := bytes.Repeat([]byte{0x45}, MaxStringBytes*2) // 'A' ciphered, no terminator
	got := ReadString(blob, 0)
	assert.Len(t, got, MaxStringBytes)
	assert.Equal(t, string(bytes.Repeat([]byte{'A'}, MaxStringBytes)), got)

	got = ReadString(blob, len(blob)-3)
	assert.Equal(t, "AAA", got, "end of blob stops the scan")
}

func TestReadStringKeepsControlBytes(t *testing.T) {
	blob := []byte{0x45, 0x02, 0x46, 0x00}
	assert.Equal(t, "A\x02B", ReadString(blob, 0))
	assert.Equal(t, []byte{'A', 0x02, 'B'}, ReadRaw(blob, 0))
}

func TestRecordText(t *testing.T) {
	const base = 16
	file := make([]byte, base)
	file = append(file, append(ciphered(t, "Blizzard"), 0)...)
	file = append(file, append(ciphered(t, "Ice damage"), 0)...)

	r := magic.NewRecord()
	r.NameOffset = 0
	r.DescOffset = uint16(len("Blizzard") + 1)

	name, desc := RecordText(file, base, r)
	assert.Equal(t, "Blizzard", name)
	assert.Equal(t, "Ice damage", desc)
}
