// Package text reads ciphered, zero-terminated strings out of a text blob.
package text

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/cipher"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

// MaxStringBytes caps a scan when the terminator is missing or the blob is corrupt.
const MaxStringBytes = 100

// ReadRaw returns the deciphered bytes of the string at offset. An offset
// outside the blob yields nil: absent text is normal for some records.
func ReadRaw(blob []byte, offset int) []byte {
	if offset < 0 || offset >= len(blob) {
		return nil
	}
	end := min(len(blob), offset+MaxStringBytes)

	out := make([]byte, 0, end-offset)
	for _, b := range blob[offset:end] {
		if b == 0 {
			break
		}
		out = append(out, cipher.Decode(b))
	}
	return out
}

// ReadString returns the deciphered string at offset, or "" when the offset is
// outside the blob. Control characters are kept.
func ReadString(blob []byte, offset int) string {
	raw := ReadRaw(blob, offset)
	if len(raw) == 0 {
		return ""
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(s)
}

// RecordText reads a record's name and description from file, whose text
// offsets are relative to base.
func RecordText(file []byte, base int, r *magic.Record) (name, description string) {
	return ReadString(file, base+int(r.NameOffset)), ReadString(file, base+int(r.DescOffset))
}
