package models

import (
	"fmt"
	"strings"
)

// Revision is a comparable version token parsed from a revision tag.
// Comparison is lexicographic over (Numeric, Ordinal) with the numeric
// tuple taking precedence; a nil *Revision sorts below every non-nil one.
type Revision struct {
	// Numeric holds the dotted version digits, so v1.2.1 becomes
	// [1, 2, 1]. Nil for letter- or counter-only revisions like Rev A.
	Numeric []int

	// Ordinal is the revision counter: Rev A is 0, Rev B is 1, (rev 2)
	// is 2. Negative when the tag carried no revision counter.
	Ordinal int
}

// CompareRevisions orders two possibly-nil revision tokens. It returns a
// negative value when a is older than b, zero when equal, positive when
// newer. Absence sorts lowest.
func CompareRevisions(a, b *Revision) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	an, bn := a.Numeric, b.Numeric
	for i := 0; i < len(an) || i < len(bn); i++ {
		av, bv := 0, 0
		if i < len(an) {
			av = an[i]
		}
		if i < len(bn) {
			bv = bn[i]
		}
		if av != bv {
			return av - bv
		}
	}

	switch {
	case a.Ordinal < b.Ordinal:
		return -1
	case a.Ordinal > b.Ordinal:
		return 1
	}
	return 0
}

// String renders the token for reports, e.g. "v1.2" or "rev 3".
func (r *Revision) String() string {
	if r == nil {
		return "none"
	}
	if len(r.Numeric) > 0 {
		parts := make([]string, len(r.Numeric))
		for i, n := range r.Numeric {
			parts[i] = fmt.Sprintf("%d", n)
		}
		s := "v" + strings.Join(parts, ".")
		if r.Ordinal >= 0 {
			s += fmt.Sprintf(" rev %d", r.Ordinal)
		}
		return s
	}
	if r.Ordinal >= 0 {
		return fmt.Sprintf("rev %d", r.Ordinal)
	}
	return "none"
}
