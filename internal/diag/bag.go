package diag

import (
	"sort"
)

// Bag accumulates diagnostics with an optional emit limit. Once the limit
// is reached further diagnostics are counted but not stored, so summary
// totals stay accurate while output is truncated.
type Bag struct {
	items   []Diagnostic
	max     int // 0 = unlimited
	dropped int
}

// NewBag creates a bag with the given emit limit (0 = unlimited).
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, 8),
		max:   max,
	}
}

// Add stores a diagnostic, honoring the limit. Returns false when the
// diagnostic was counted but not stored.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any stored or dropped diagnostic reached
// SevError.
func (b *Bag) HasErrors() bool {
	if b.dropped > 0 {
		return true
	}
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasParseErrors reports whether the bag holds a fatal parse error.
func (b *Bag) HasParseErrors() bool {
	for i := range b.items {
		if b.items[i].Code.IsParseError() {
			return true
		}
	}
	return false
}

// Len returns the number of stored diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Total returns stored plus dropped diagnostics.
func (b *Bag) Total() int {
	return len(b.items) + b.dropped
}

// Truncated reports whether the limit suppressed any diagnostic.
func (b *Bag) Truncated() bool {
	return b.dropped > 0
}

// Items returns a read-only view of the stored diagnostics.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends all diagnostics from other, honoring the receiver's limit.
func (b *Bag) Merge(other *Bag) {
	for _, d := range other.items {
		b.Add(d)
	}
	b.dropped += other.dropped
}

// Sort orders diagnostics by (file, start, end, severity desc, code) for
// deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Filter drops stored diagnostics rejected by keep. Dropped-by-limit counts
// are unaffected.
func (b *Bag) Filter(keep func(*Diagnostic) bool) int {
	out := b.items[:0]
	removed := 0
	for i := range b.items {
		if keep(&b.items[i]) {
			out = append(out, b.items[i])
		} else {
			removed++
		}
	}
	b.items = out
	return removed
}
