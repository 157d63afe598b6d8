package scan

import "strings"

// Excluder decides which directory names the scanner skips: the managed
// output folders romsort creates, the region folders it moves entries
// into, and any names the user configured. Matching is case-insensitive
// on the bare directory name.
type Excluder struct {
	names map[string]bool
}

// NewExcluder builds an excluder from one or more name lists.
func NewExcluder(lists ...[]string) *Excluder {
	names := make(map[string]bool)
	for _, list := range lists {
		for _, n := range list {
			n = strings.TrimSpace(n)
			if n != "" {
				names[strings.ToLower(n)] = true
			}
		}
	}
	return &Excluder{names: names}
}

// Excluded reports whether a directory with this name is skipped.
func (e *Excluder) Excluded(name string) bool {
	return e.names[strings.ToLower(name)]
}
