package diag

import (
	"fmt"
	"sort"
)

// Bag collects diagnostics of one compilation up to a fixed limit.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag returns a bag holding at most max diagnostics. A non-positive
// max means no limit.
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   max,
	}
}

// Add stores d unless the limit is reached, in which case it is counted
// as dropped and false is returned.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// Dropped reports how many diagnostics were discarded by the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors reports whether any diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic is a warning or worse.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the stored diagnostics. The slice aliases the bag.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// First returns the first error-severity diagnostic.
func (b *Bag) First() (Diagnostic, bool) {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return d, true
		}
	}
	return Diagnostic{}, false
}

// Sort orders diagnostics by file, start, end, severity (desc) and code.
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

// Dedup keeps the first diagnostic for each code and primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code.String(), d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}
