// Package layout computes the text resource layout for newly authored spells.
//
// Every language gets its own resource file, but all files share one layout:
// each spell's block starts at the same offset in every language and is sized
// for the longest translation, so the offsets stored in the binary records are
// valid whichever language file is installed.
package layout

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/cipher"
	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

// OffsetAdjustment converts a position in the text layout into the coordinate
// space of the record offset fields.
const OffsetAdjustment = 511

// TextPair is one language's plaintext for a spell.
type TextPair struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// SpellText carries every available translation of one spell.
type SpellText struct {
	Index        int                 `yaml:"index" json:"index"`
	Translations map[string]TextPair `yaml:"text" json:"text"`
}

// SpellLayout is the planned block of one spell.
type SpellLayout struct {
	Index      int
	BlockStart int
	NameBytes  int // Reserved name bytes, terminator included
	DescBytes  int // Reserved description bytes, terminator included
	BlockSize  int
	NameOffset uint16
	DescOffset uint16
	Blocks     map[string][]byte // Ciphered, padded block per language
	Fallbacks  []string          // Languages that used the primary text
}

// Plan is the language-invariant layout of a set of spells.
type Plan struct {
	Primary   string
	Languages []string // Primary first, then the rest sorted
	Spells    []SpellLayout
	TotalSize int
}

// Option tunes planning.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers bounds the number of spells measured concurrently.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// measured holds the ciphered text of one spell in every language.
type measured struct {
	names     map[string][]byte
	descs     map[string][]byte
	fallbacks []string
	nameBytes int
	descBytes int
}

// Build plans the layout of spells in ascending index order, whatever the
// order of the input. Indices must be unique. primary must have text for every
// spell; other languages fall back to it where missing.
func Build(spells []SpellText, primary string, opts ...Option) (*Plan, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	spells, err := sortByIndex(spells)
	if err != nil {
		return nil, err
	}
	languages, err := collectLanguages(spells, primary)
	if err != nil {
		return nil, err
	}

	measures := make([]measured, len(spells))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := range spells {
		i := i
		g.Go(func() error {
			m, err := measure(spells[i], primary, languages)
			if err != nil {
				return fmt.Errorf("spell %d: %w", spells[i].Index, err)
			}
			measures[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	plan := &Plan{
		Primary:   primary,
		Languages: languages,
		Spells:    make([]SpellLayout, len(spells)),
	}
	start := 0
	for i, m := range measures {
		nameOffset := start + OffsetAdjustment
		descOffset := start + m.nameBytes + OffsetAdjustment
		if descOffset > 0xFFFF {
			return nil, &kerrors.RangeError{Offset: start, Need: descOffset, Have: 0xFFFF, Err: kerrors.ErrOffsetOverflow}
		}

		sl := SpellLayout{
			Index:      spells[i].Index,
			BlockStart: start,
			NameBytes:  m.nameBytes,
			DescBytes:  m.descBytes,
			BlockSize:  m.nameBytes + m.descBytes,
			NameOffset: uint16(nameOffset),
			DescOffset: uint16(descOffset),
			Blocks:     make(map[string][]byte, len(languages)),
			Fallbacks:  m.fallbacks,
		}
		for _, lang := range languages {
			block := make([]byte, sl.BlockSize)
			copy(block, m.names[lang])
			copy(block[m.nameBytes:], m.descs[lang])
			sl.Blocks[lang] = block
		}

		plan.Spells[i] = sl
		start += sl.BlockSize
	}
	plan.TotalSize = start
	return plan, nil
}

// sortByIndex returns a copy of spells ordered by Index, rejecting duplicates.
func sortByIndex(spells []SpellText) ([]SpellText, error) {
	sorted := make([]SpellText, len(spells))
	copy(sorted, spells)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Index == sorted[i-1].Index {
			return nil, fmt.Errorf("%w: %d", kerrors.ErrDuplicateSpell, sorted[i].Index)
		}
	}
	return sorted, nil
}

// collectLanguages returns the union of all languages, primary first, and
// checks that every spell has primary text.
func collectLanguages(spells []SpellText, primary string) ([]string, error) {
	seen := map[string]bool{primary: true}
	var others []string
	var missing []int
	for _, s := range spells {
		if _, ok := s.Translations[primary]; !ok {
			missing = append(missing, s.Index)
		}
		for lang := range s.Translations {
			if !seen[lang] {
				seen[lang] = true
				others = append(others, lang)
			}
		}
	}
	if len(missing) > 0 {
		return nil, &kerrors.ValidationError{Language: primary, SpellIndices: missing}
	}
	sort.Strings(others)
	return append([]string{primary}, others...), nil
}

func measure(s SpellText, primary string, languages []string) (measured, error) {
	m := measured{
		names: make(map[string][]byte, len(languages)),
		descs: make(map[string][]byte, len(languages)),
	}
	for _, lang := range languages {
		pair, ok := s.Translations[lang]
		if !ok {
			pair = s.Translations[primary]
			m.fallbacks = append(m.fallbacks, lang)
		}

		name, err := cipher.Cipher(pair.Name)
		if err != nil {
			return m, fmt.Errorf("%s name: %w", lang, err)
		}
		desc, err := cipher.Cipher(pair.Description)
		if err != nil {
			return m, fmt.Errorf("%s description: %w", lang, err)
		}

		m.names[lang], m.descs[lang] = name, desc
		m.nameBytes = max(m.nameBytes, len(name)+1)
		m.descBytes = max(m.descBytes, len(desc)+1)
	}
	return m, nil
}

// Spell returns the layout of the spell with the given index.
func (p *Plan) Spell(index int) (SpellLayout, bool) {
	for _, s := range p.Spells {
		if s.Index == index {
			return s, true
		}
	}
	return SpellLayout{}, false
}

// LanguageFile concatenates lang's blocks into the content of its resource file.
func (p *Plan) LanguageFile(lang string) ([]byte, error) {
	out := make([]byte, 0, p.TotalSize)
	for _, s := range p.Spells {
		block, ok := s.Blocks[lang]
		if !ok {
			return nil, fmt.Errorf("language %q is not part of the plan", lang)
		}
		out = append(out, block...)
	}
	return out, nil
}

// Apply stores the planned offsets in the records keyed by spell index.
// Records for spells outside the plan are left alone.
func (p *Plan) Apply(records map[int]*magic.Record) {
	for _, s := range p.Spells {
		if r, ok := records[s.Index]; ok && r != nil {
			r.NameOffset = s.NameOffset
			r.DescOffset = s.DescOffset
		}
	}
}
