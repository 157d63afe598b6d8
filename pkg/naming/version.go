package naming

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mhoutman/romsort/pkg/models"
)

// revisionRule pairs a compiled pattern with an extraction function.
// Rules are evaluated in order by [ParseRevision]; first match wins.
type revisionRule struct {
	Pattern *regexp.Regexp
	Extract func(matches []string) *models.Revision
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

var (
	reDottedVersion = regexp.MustCompile(
		`(?i)^v?(\d+)\.(\d+)(?:\.(\d+))?$`)

	reWordVersion = regexp.MustCompile(
		`(?i)^ver(?:sion|\.)?\s*(\d+)(?:\.(\d+))?(?:\.(\d+))?$`)

	reNumberedRevision = regexp.MustCompile(
		`(?i)^r(?:ev(?:ision)?)?\.?\s*(\d+)$`)

	reLetterRevision = regexp.MustCompile(
		`(?i)^rev\.?\s*([a-z])$`)
)

// revisionRules is the ordered revision-parse table. Alpha and beta
// tags carrying a counter never reach it; the special table claims them
// first.
var revisionRules = []revisionRule{
	{reDottedVersion, extractNumeric},
	{reWordVersion, extractNumeric},
	{reNumberedRevision, extractRevisionNumber},
	{reLetterRevision, extractRevisionLetter},
}

// ParseRevision parses a version or revision tag into a comparable
// token. It returns nil when the text is not a recognized revision
// form. Bare integers are not revisions: a lone (1) is a disc number or
// dump counter more often than a version.
func ParseRevision(raw string) *models.Revision {
	t := strings.TrimSpace(raw)
	for _, r := range revisionRules {
		if m := r.Pattern.FindStringSubmatch(t); m != nil {
			return r.Extract(m)
		}
	}
	return nil
}

func extractNumeric(matches []string) *models.Revision {
	numeric := []int{atoi(matches[1])}
	for _, g := range matches[2:] {
		if g != "" {
			numeric = append(numeric, atoi(g))
		}
	}
	return &models.Revision{Numeric: numeric, Ordinal: -1}
}

func extractRevisionNumber(matches []string) *models.Revision {
	return &models.Revision{Ordinal: atoi(matches[1])}
}

func extractRevisionLetter(matches []string) *models.Revision {
	letter := strings.ToLower(matches[1])
	return &models.Revision{Ordinal: int(letter[0] - 'a')}
}
