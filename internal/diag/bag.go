package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics up to an optional limit.
type Bag struct {
	items []Diagnostic
	limit int
}

// NewBag keeps at most limit diagnostics; limit <= 0 keeps everything.
func NewBag(limit int) *Bag {
	return &Bag{limit: limit}
}

// Add reports false once the limit is reached and d was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.limit > 0 && len(b.items) >= b.limit {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the stored slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Sort orders by file and position; at the same span errors come first.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}
