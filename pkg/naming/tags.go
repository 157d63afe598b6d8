package naming

import (
	"regexp"
	"strings"

	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/region"
)

// specialRule pairs a special-version category with the pattern that
// identifies it. Rules are evaluated in order by [ClassifyTag]; first
// match wins, which settles the short-code collisions: b1 is Beta and
// never Bad Dump, a bare h is Homebrew while h1 is Hack, and T+Eng is a
// translation before t1 can claim it as a trainer.
type specialRule struct {
	Category models.SpecialCategory
	Pattern  *regexp.Regexp
}

var specialRules = []specialRule{
	{models.SpecialProto, regexp.MustCompile(`(?i)^proto(?:type)?\s*\d*$`)},
	{models.SpecialBeta, regexp.MustCompile(`(?i)^(?:beta\s*\d*(?:\.\d+)?|b\d*)$`)},
	{models.SpecialAlpha, regexp.MustCompile(`(?i)^(?:alpha\s*\d*(?:\.\d+)?|a\d*)$`)},
	{models.SpecialDemo, regexp.MustCompile(`(?i)^(?:demo\s*\d*|d\d*)$`)},
	{models.SpecialSample, regexp.MustCompile(`(?i)^sample\s*\d*$`)},
	{models.SpecialHack, regexp.MustCompile(`(?i)^(?:hack|h\d+)$`)},
	{models.SpecialTranslation, regexp.MustCompile(`(?i)^(?:t[+&-].*|translation|translated)$`)},
	{models.SpecialHomebrew, regexp.MustCompile(`(?i)^(?:homebrew|h)$`)},
	{models.SpecialTrainer, regexp.MustCompile(`(?i)^(?:trainer|t\d*)$`)},
	{models.SpecialOverdump, regexp.MustCompile(`(?i)^(?:overdump|o\d*)$`)},
	{models.SpecialBadDump, regexp.MustCompile(`(?i)^(?:bad|!p)$`)},
	{models.SpecialCracked, regexp.MustCompile(`(?i)^(?:cracked|cr)$`)},
	{models.SpecialFixed, regexp.MustCompile(`(?i)^(?:fixed|f\d*)$`)},
	{models.SpecialPirate, regexp.MustCompile(`(?i)^(?:pirate|p\d*)$`)},
	{models.SpecialGoodDump, regexp.MustCompile(`(?i)^(?:good|!)$`)},
}

// languageAliases maps lowercased language tags to their canonical
// name. Two-letter codes collide with region short codes only in
// casing: (Fr) is French here because region short codes match
// uppercase-only, so (FR) never reaches this table.
var languageAliases = map[string]string{
	"en": "English", "eng": "English", "english": "English",
	"fr": "French", "fre": "French", "french": "French",
	"de": "German", "ger": "German", "german": "German",
	"es": "Spanish", "spa": "Spanish", "spanish": "Spanish",
	"it": "Italian", "ita": "Italian", "italian": "Italian",
	"nl": "Dutch", "dut": "Dutch", "dutch": "Dutch",
	"pt": "Portuguese", "portuguese": "Portuguese",
	"sv": "Swedish", "swedish": "Swedish",
	"no": "Norwegian", "norwegian": "Norwegian",
	"da": "Danish", "danish": "Danish",
	"fi": "Finnish", "finnish": "Finnish",
	"pl": "Polish", "polish": "Polish",
	"ru": "Russian", "russian": "Russian",
	"ja": "Japanese", "japanese": "Japanese",
	"ko": "Korean", "korean": "Korean",
	"zh": "Chinese", "chinese": "Chinese",
}

// ClassifyTag assigns one raw tag to a category. The tables are tried
// in a fixed precedence: region, special version, language, revision.
// A tag matching nothing is classified unknown rather than dropped so
// it can surface in the plan report.
func ClassifyTag(raw string) models.Tag {
	t := strings.TrimSpace(raw)

	if canonical, ok := region.MatchTag(t); ok {
		return models.Tag{Raw: raw, Category: models.TagRegion, Canonical: canonical}
	}
	for _, r := range specialRules {
		if r.Pattern.MatchString(t) {
			return models.Tag{Raw: raw, Category: models.TagSpecial, Canonical: string(r.Category)}
		}
	}
	if lang, ok := languageAliases[strings.ToLower(t)]; ok {
		return models.Tag{Raw: raw, Category: models.TagLanguage, Canonical: lang}
	}
	if rev := ParseRevision(t); rev != nil {
		return models.Tag{Raw: raw, Category: models.TagRevision, Canonical: rev.String()}
	}
	return models.Tag{Raw: raw, Category: models.TagUnknown}
}

// DominantSpecial reduces a tag list to at most one special-version
// category using the fixed precedence order. Good Dump never counts: a
// verified standard release competes as a standard release.
func DominantSpecial(tags []models.Tag) models.SpecialCategory {
	present := make(map[models.SpecialCategory]bool)
	for _, t := range tags {
		if t.Category == models.TagSpecial {
			present[models.SpecialCategory(t.Canonical)] = true
		}
	}
	for _, c := range models.SpecialPrecedence {
		if present[c] {
			return c
		}
	}
	return ""
}
