// Package dedupe groups classified entries into game identities and
// resolves each group into per-entry routing directives.
package dedupe

import (
	"github.com/mhoutman/romsort/pkg/models"
)

// Group merges entries sharing one normalized base title into identity
// groups. Files and folder games group together. Groups come back in
// first-seen order, members in scan order; different base titles are
// never compared, even when a human would call them the same game.
func Group(entries []*models.Entry) []*models.IdentityGroup {
	byTitle := make(map[string]*models.IdentityGroup)
	var groups []*models.IdentityGroup

	for _, e := range entries {
		g, ok := byTitle[e.BaseTitle]
		if !ok {
			g = &models.IdentityGroup{BaseTitle: e.BaseTitle}
			byTitle[e.BaseTitle] = g
			groups = append(groups, g)
		}
		g.Entries = append(g.Entries, e)
	}

	return groups
}
