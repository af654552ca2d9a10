package pkg

import kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"

// Re-exported so collaborators can match facade errors without importing the
// kernel packages.
var (
	ErrShortBuffer     = kerrors.ErrShortBuffer
	ErrSectionBounds   = kerrors.ErrSectionBounds
	ErrUnknownCode     = kerrors.ErrUnknownCode
	ErrPrimaryMissing  = kerrors.ErrPrimaryMissing
	ErrDuplicateSpell  = kerrors.ErrDuplicateSpell
	ErrUnencodableText = kerrors.ErrUnencodableText
)

type (
	RangeError        = kerrors.RangeError
	SectionError      = kerrors.SectionError
	StrictDecodeError = kerrors.StrictDecodeError
	ValidationError   = kerrors.ValidationError
)
