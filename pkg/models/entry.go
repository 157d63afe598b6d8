package models

// EntryKind distinguishes loose files from folder-based games
type EntryKind string

const (
	// KindFile is a single ROM file
	KindFile EntryKind = "file"
	// KindFolder is a directory treated as one multi-file game
	KindFolder EntryKind = "folder"
)

// TagCategory classifies a raw filename tag
type TagCategory string

const (
	// TagRegion is a release-territory marker such as (USA)
	TagRegion TagCategory = "region"
	// TagSpecial is a non-standard release marker such as (Beta)
	TagSpecial TagCategory = "special"
	// TagLanguage is a language code such as (En) or (En,Fr,De)
	TagLanguage TagCategory = "language"
	// TagRevision is a version or revision marker such as (v1.1) or (Rev A)
	TagRevision TagCategory = "revision"
	// TagUnknown is a tag no pattern table recognized
	TagUnknown TagCategory = "unknown"
)

// Tag is one classified filename tag
type Tag struct {
	// Raw is the tag text as found between parentheses or brackets
	Raw string

	// Category is the classification outcome
	Category TagCategory

	// Canonical is the normalized value: a region name for region tags,
	// a special category for special tags, a language name for language
	// tags. Empty for unknown tags.
	Canonical string
}

// SpecialCategory is a non-standard release category
type SpecialCategory string

const (
	SpecialProto       SpecialCategory = "Proto"
	SpecialBeta        SpecialCategory = "Beta"
	SpecialAlpha       SpecialCategory = "Alpha"
	SpecialDemo        SpecialCategory = "Demo"
	SpecialSample      SpecialCategory = "Sample"
	SpecialHack        SpecialCategory = "Hack"
	SpecialTranslation SpecialCategory = "Translation"
	SpecialHomebrew    SpecialCategory = "Homebrew"
	SpecialTrainer     SpecialCategory = "Trainer"
	SpecialOverdump    SpecialCategory = "Overdump"
	SpecialBadDump     SpecialCategory = "Bad Dump"
	SpecialGoodDump    SpecialCategory = "Good Dump"
	SpecialCracked     SpecialCategory = "Cracked"
	SpecialFixed       SpecialCategory = "Fixed"
	SpecialPirate      SpecialCategory = "Pirate"
)

// SpecialPrecedence orders categories for picking an entry's dominant
// special version when several tags matched. First match wins.
// Good Dump is absent on purpose: it marks integrity of the standard
// release, not a variant.
var SpecialPrecedence = []SpecialCategory{
	SpecialProto,
	SpecialBeta,
	SpecialAlpha,
	SpecialDemo,
	SpecialSample,
	SpecialHack,
	SpecialTranslation,
	SpecialHomebrew,
	SpecialTrainer,
	SpecialOverdump,
	SpecialBadDump,
	SpecialCracked,
	SpecialFixed,
	SpecialPirate,
}

// DevSpecials are the categories staged into the Beta-Proto folder by the
// specials workflow step and the executor.
var DevSpecials = []SpecialCategory{
	SpecialProto,
	SpecialBeta,
	SpecialAlpha,
	SpecialDemo,
	SpecialSample,
}

// IsDevSpecial reports whether c belongs to the Beta-Proto folder set.
func IsDevSpecial(c SpecialCategory) bool {
	for _, d := range DevSpecials {
		if c == d {
			return true
		}
	}
	return false
}

// RegionUnknown is the primary region of an entry with no region tags.
const RegionUnknown = "Unknown"

// SystemFamily groups extensions that belong to one console ecosystem so
// format preference tables compare like with like.
type SystemFamily string

const (
	FamilyNintendo SystemFamily = "nintendo"
	FamilySega     SystemFamily = "sega"
	FamilySony     SystemFamily = "sony"
	FamilyAtari    SystemFamily = "atari"
	FamilyNEC      SystemFamily = "nec"
	FamilySNK      SystemFamily = "snk"
	FamilyXbox     SystemFamily = "xbox"
	FamilyComputer SystemFamily = "computer"
	FamilyDisc     SystemFamily = "disc"
	FamilyArchive  SystemFamily = "archive"
	FamilyGeneric  SystemFamily = "generic"
	FamilyUnknown  SystemFamily = "unknown"
)

// Entry is one classifiable unit: a ROM file or a folder-based game.
// An Entry is built once by classification and treated as immutable
// afterwards; resolution never modifies it.
type Entry struct {
	// Path is the absolute path of the file or folder
	Path string

	// Name is the file name (with extension) or folder name
	Name string

	// Kind distinguishes file entries from folder-game entries
	Kind EntryKind

	// BaseTitle is the tag-stripped, whitespace-normalized title used
	// for identity grouping
	BaseTitle string

	// Tags are the classified tags in filename order
	Tags []Tag

	// Region is the resolved primary region, or RegionUnknown
	Region string

	// Special is the dominant special-version category, empty for a
	// standard release
	Special SpecialCategory

	// Revision is the parsed version token, nil when the name carries
	// none
	Revision *Revision

	// Ext is the lowercased file extension including the dot; empty for
	// folder entries
	Ext string

	// Family is the system family inferred from Ext
	Family SystemFamily

	// FormatRank is the format desirability score, higher is better
	FormatRank int

	// SavePath is the absolute path of a paired save file, empty when
	// none exists
	SavePath string

	// Size in bytes (file size, or total of folder members)
	Size int64

	// Ordinal is the position in scan order, used for stable plan output
	Ordinal int
}

// HasSave reports whether a save file is paired with this entry.
func (e *Entry) HasSave() bool {
	return e.SavePath != ""
}

// TagsInCategory returns the entry's tags of one category, in filename
// order.
func (e *Entry) TagsInCategory(c TagCategory) []Tag {
	var out []Tag
	for _, t := range e.Tags {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Regions returns the canonical region values of all region tags, in
// filename order, without duplicates.
func (e *Entry) Regions() []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range e.Tags {
		if t.Category != TagRegion || seen[t.Canonical] {
			continue
		}
		seen[t.Canonical] = true
		out = append(out, t.Canonical)
	}
	return out
}

// IdentityGroup is a set of entries sharing one normalized base title.
// Members are only ever compared with each other.
type IdentityGroup struct {
	// BaseTitle is the shared normalized title
	BaseTitle string

	// Entries in scan order; never empty
	Entries []*Entry
}
