package pkg

import (
	"github.com/provide-io/spellforge/go/spellforge/internal/resources"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

// VerificationReport describes a parse/serialize round trip of the spell section.
type VerificationReport struct {
	Records       int
	Warnings      []magic.Warning
	Identical     bool
	FirstMismatch int    // -1 when identical
	SHA256        string // Of the input, "sha256:" prefixed
	Adler32       string // Of the input, "adler32:" prefixed
}

// VerifySection parses the spell section of kernel, serializes it back over a
// copy and reports whether the result matches byte for byte.
func VerifySection(kernel []byte, opts ...magic.Option) (*VerificationReport, error) {
	return VerifySectionAt(kernel, magic.SectionOffset, magic.RecordSize, magic.RecordCount, opts...)
}

// VerifySectionAt is VerifySection for a section of count records of stride
// bytes at sectionOffset.
func VerifySectionAt(kernel []byte, sectionOffset, stride, count int, opts ...magic.Option) (*VerificationReport, error) {
	records, warnings, err := magic.ParseAll(kernel, sectionOffset, stride, count, opts...)
	if err != nil {
		return nil, err
	}

	out, err := magic.SerializeAll(records, kernel, sectionOffset, stride, opts...)
	if err != nil {
		return nil, err
	}

	report := &VerificationReport{
		Records:       len(records),
		Warnings:      warnings,
		Identical:     true,
		FirstMismatch: -1,
		SHA256:        resources.CalculateChecksum(kernel, resources.ChecksumSHA256),
		Adler32:       resources.CalculateChecksum(kernel, resources.ChecksumAdler32),
	}
	for i := range kernel {
		if kernel[i] != out[i] {
			report.Identical = false
			report.FirstMismatch = i
			break
		}
	}
	return report, nil
}
