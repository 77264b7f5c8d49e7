package diag

import "sort"

// maxDiagnostics caps how many diagnostics a Bag retains, so a pathological
// input (e.g. every line unterminated) cannot make diagnostic rendering
// itself the bottleneck.
const maxDiagnostics = 200

// Bag collects diagnostics from a single parse, deduplicating exact repeats
// and capping total volume.
type Bag struct {
	items   []Diagnostic
	seen    map[string]bool
	dropped int
}

// NewBag creates an empty Bag.
func NewBag() *Bag {
	return &Bag{seen: make(map[string]bool)}
}

// Add records d unless it is an exact duplicate of something already in the
// bag or the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) {
	key := dedupKey(d)
	if b.seen[key] {
		return
	}
	if len(b.items) >= maxDiagnostics {
		b.dropped++
		return
	}
	b.seen[key] = true
	b.items = append(b.items, d)
}

// Merge appends every diagnostic from other into b, respecting the same
// dedup/cap rules.
func (b *Bag) Merge(other *Bag) {
	for _, d := range other.items {
		b.Add(d)
	}
}

// Len reports how many diagnostics are currently retained.
func (b *Bag) Len() int { return len(b.items) }

// Dropped reports how many diagnostics were discarded after the cap was
// reached.
func (b *Bag) Dropped() int { return b.dropped }

// HasErrors reports whether any retained diagnostic is SeverityError.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Sorted returns the retained diagnostics ordered by span start, then by
// severity (errors first), then by code, for stable rendering and tests.
func (b *Bag) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	sort.Slice(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if a.Span.Start != c.Span.Start {
			return a.Span.Start < c.Span.Start
		}
		if a.Severity != c.Severity {
			return a.Severity < c.Severity
		}
		return a.Code < c.Code
	})
	return out
}

func dedupKey(d Diagnostic) string {
	return string(d.Code) + "@" + d.Span.String() + ":" + d.Message
}
