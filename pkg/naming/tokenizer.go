// Package naming tokenizes ROM filenames into base titles and tags and
// classifies each tag against ordered pattern tables.
package naming

import (
	"strings"
)

// Tokenized is the result of splitting a filename stem.
type Tokenized struct {
	// BaseTitle is the normalized leading text before the first tag
	// segment, used as the identity-group key
	BaseTitle string

	// RawTags holds the contents of every parenthesized or bracketed
	// segment, split on commas and plus signs, in filename order
	RawTags []string
}

// Tokenize splits a filename stem (extension already removed) into a
// base title and raw tag strings. It is total: names with no segments
// yield the whole stem as base title and no tags; unclosed segments run
// to the end of the stem.
func Tokenize(stem string) Tokenized {
	var segments []string
	firstSeg := -1
	depth := 0
	segStart := 0

	for i := 0; i < len(stem); i++ {
		switch stem[i] {
		case '(', '[':
			if depth == 0 {
				segStart = i + 1
				if firstSeg < 0 {
					firstSeg = i
				}
			}
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
				if depth == 0 {
					segments = append(segments, stem[segStart:i])
				}
			}
		}
	}
	if depth > 0 {
		segments = append(segments, stem[segStart:])
	}

	base := stem
	if firstSeg >= 0 {
		base = stem[:firstSeg]
	}
	title := NormalizeTitle(base)
	if title == "" {
		// Name consists only of tags; fall back to the whole stem so
		// such files never all collapse into one empty-title group.
		title = NormalizeTitle(strings.Map(dropBrackets, stem))
	}

	return Tokenized{
		BaseTitle: title,
		RawTags:   splitSegments(segments),
	}
}

// splitSegments breaks each segment on commas and plus signs, so
// "USA, Europe" and "En+Fr" each contribute two tags. Plus signs that
// belong to the tag itself survive: translation markers (T+Eng) and
// trailing ratings (18+) stay whole.
func splitSegments(segments []string) []string {
	var tags []string
	for _, seg := range segments {
		for _, part := range strings.Split(seg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			tags = append(tags, splitPlus(part)...)
		}
	}
	return tags
}

func splitPlus(part string) []string {
	lower := strings.ToLower(part)
	if strings.HasPrefix(lower, "t+") || strings.HasPrefix(lower, "t-") || strings.HasPrefix(lower, "t&") {
		return []string{part}
	}
	if strings.HasSuffix(part, "+") || !strings.Contains(part, "+") {
		return []string{part}
	}
	var out []string
	for _, p := range strings.Split(part, "+") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeTitle lowercases, collapses whitespace runs and trims the
// separator characters titles accumulate next to tag segments.
func NormalizeTitle(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .-_")
}

func dropBrackets(r rune) rune {
	switch r {
	case '(', ')', '[', ']':
		return -1
	}
	return r
}
