package naming

import (
	"regexp"

	"github.com/mhoutman/romsort/pkg/models"
)

// Parsed is the full classification of one filename stem.
type Parsed struct {
	// BaseTitle is the normalized identity-group key
	BaseTitle string

	// Tags are all classified tags in filename order
	Tags []models.Tag

	// Special is the dominant special-version category, empty for a
	// standard release
	Special models.SpecialCategory

	// Revision is the first parsed revision tag, nil when none
	Revision *models.Revision

	// Translated reports a fan-translation marker anywhere in the name
	Translated bool

	// Unknown holds the raw text of tags no table recognized
	Unknown []string
}

// reFreeTranslation catches translation credits written into the title
// itself rather than a tag, e.g. "Game Fan Translation.smc".
var reFreeTranslation = regexp.MustCompile(
	`(?i)\b(?:fan|english)\s+translation\b|\btranslated\b`)

// Parse tokenizes a filename stem and classifies every tag. The result
// carries everything entry construction needs short of filesystem
// facts (extension, save pairing, size).
func Parse(stem string) Parsed {
	tok := Tokenize(stem)

	p := Parsed{BaseTitle: tok.BaseTitle}
	for _, raw := range tok.RawTags {
		tag := ClassifyTag(raw)
		p.Tags = append(p.Tags, tag)

		switch tag.Category {
		case models.TagRevision:
			if p.Revision == nil {
				p.Revision = ParseRevision(tag.Raw)
			}
		case models.TagUnknown:
			p.Unknown = append(p.Unknown, tag.Raw)
		}
	}

	p.Special = DominantSpecial(p.Tags)
	p.Translated = p.hasTranslationMarker() || reFreeTranslation.MatchString(stem)
	return p
}

func (p Parsed) hasTranslationMarker() bool {
	for _, t := range p.Tags {
		if t.Category == models.TagSpecial && t.Canonical == string(models.SpecialTranslation) {
			return true
		}
	}
	return false
}
