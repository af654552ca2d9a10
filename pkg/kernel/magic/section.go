package magic

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	kerrors "github.com/provide-io/spellforge/go/spellforge/pkg/kernel/errors"
)

// Option tunes batch section operations.
type Option func(*sectionOptions)

type sectionOptions struct {
	workers int
	strict  bool
}

// WithWorkers bounds the number of records decoded or encoded concurrently.
// Values below 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *sectionOptions) { o.workers = n }
}

// WithStrictEnums makes ParseAll fail on unknown enum codes instead of
// reporting warnings.
func WithStrictEnums() Option {
	return func(o *sectionOptions) { o.strict = true }
}

func buildOptions(opts []Option) sectionOptions {
	o := sectionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// CheckSection validates that count records of stride bytes starting at offset
// fit in a buffer of bufLen bytes.
func CheckSection(bufLen, offset, stride, count int) error {
	if stride < RecordSize {
		return fmt.Errorf("record stride %d is smaller than record size %d", stride, RecordSize)
	}
	if offset < 0 || count < 0 {
		return &kerrors.SectionError{Offset: offset, Count: count, Stride: stride, Available: bufLen}
	}
	if count == 0 {
		if offset > bufLen {
			return &kerrors.SectionError{Offset: offset, Count: count, Stride: stride, Required: offset, Available: bufLen}
		}
		return nil
	}
	room := bufLen - offset - RecordSize
	if room < 0 || (count-1) > room/stride {
		return &kerrors.SectionError{Offset: offset, Count: count, Stride: stride, Required: sectionEnd(offset, stride, count), Available: bufLen}
	}
	return nil
}

// sectionEnd is offset+(count-1)*stride+RecordSize, saturated at math.MaxInt.
func sectionEnd(offset, stride, count int) int {
	if offset > math.MaxInt-RecordSize || count-1 > (math.MaxInt-offset-RecordSize)/stride {
		return math.MaxInt
	}
	return offset + (count-1)*stride + RecordSize
}

// ParseAll decodes count consecutive records of stride bytes starting at
// sectionOffset. Records are decoded concurrently; the result is in index
// order. Warnings are sorted by offset.
func ParseAll(buf []byte, sectionOffset, stride, count int, opts ...Option) ([]*Record, []Warning, error) {
	if err := CheckSection(len(buf), sectionOffset, stride, count); err != nil {
		return nil, nil, err
	}
	o := buildOptions(opts)

	records := make([]*Record, count)
	perRecord := make([][]Warning, count)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < count; i++ {
		i := i
		off := sectionOffset + i*stride
		g.Go(func() error {
			if o.strict {
				r, err := ParseRecordStrict(buf, off)
				if err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}
				records[i] = r
				return nil
			}
			r, w, err := ParseRecord(buf, off)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			records[i], perRecord[i] = r, w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, w := range perRecord {
		warnings = append(warnings, w...)
	}
	sort.SliceStable(warnings, func(a, b int) bool { return warnings[a].Offset < warnings[b].Offset })
	return records, warnings, nil
}

// SerializeAll writes records at stride intervals from sectionOffset into a
// copy of original. Bytes outside the written records are left identical to
// original, and original itself is never modified.
func SerializeAll(records []*Record, original []byte, sectionOffset, stride int, opts ...Option) ([]byte, error) {
	if err := CheckSection(len(original), sectionOffset, stride, len(records)); err != nil {
		return nil, err
	}
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("record %d is nil", i)
		}
	}
	o := buildOptions(opts)

	out := make([]byte, len(original))
	copy(out, original)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, r := range records {
		r := r
		off := sectionOffset + i*stride
		g.Go(func() error {
			r.packInto(out[off : off+RecordSize])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseSection decodes the standard spell section.
func ParseSection(buf []byte, opts ...Option) ([]*Record, []Warning, error) {
	return ParseAll(buf, SectionOffset, RecordSize, RecordCount, opts...)
}

// SerializeSection writes records over the standard spell section of a copy
// of original.
func SerializeSection(records []*Record, original []byte, opts ...Option) ([]byte, error) {
	return SerializeAll(records, original, SectionOffset, RecordSize, opts...)
}
