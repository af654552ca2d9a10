package pkg

import (
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/cipher"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/layout"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

func ParseRecord(buffer []byte, byteOffset int) (*magic.Record, []magic.Warning, error) {
	return magic.ParseRecord(buffer, byteOffset)
}

func SerializeRecord(record *magic.Record) [magic.RecordSize]byte {
	return magic.SerializeRecord(record)
}

func ParseSection(buffer []byte) ([]*magic.Record, []magic.Warning, error) {
	return magic.ParseSection(buffer)
}

func ParseSectionStrict(buffer []byte) ([]*magic.Record, error) {
	records, _, err := magic.ParseSection(buffer, magic.WithStrictEnums())
	return records, err
}

func SerializeSection(records []*magic.Record, originalBuffer []byte) ([]byte, error) {
	return magic.SerializeSection(records, originalBuffer)
}

func DecipherText(data []byte) string {
	return cipher.Decipher(data)
}

func CipherText(s string) ([]byte, error) {
	return cipher.Cipher(s)
}

func PlanLayout(spellTranslations []layout.SpellText, primaryLanguage string) (*layout.Plan, error) {
	return layout.Build(spellTranslations, primaryLanguage)
}
