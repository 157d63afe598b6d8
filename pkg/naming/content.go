package naming

import "regexp"

// contentRule pairs a match pattern with an optional unless pattern.
// The unless pattern stands in for a negative lookahead: when it
// matches, the rule does not fire.
type contentRule struct {
	Pattern *regexp.Regexp
	Unless  *regexp.Regexp
}

func rule(expr string) contentRule {
	return contentRule{Pattern: regexp.MustCompile(`(?i)` + expr)}
}

func ruleUnless(expr, unless string) contentRule {
	return contentRule{
		Pattern: regexp.MustCompile(`(?i)` + expr),
		Unless:  regexp.MustCompile(`(?i)` + unless),
	}
}

// casinoRules match gambling titles. Kept deliberately specific; card
// mechanics show up in plenty of games that are not casino games.
var casinoRules = []contentRule{
	rule(`\bcasino\b`), rule(`\bvegas\b`), rule(`\blas ?vegas\b`),
	rule(`\bgambling\b`), rule(`\bjackpot\b`),

	rule(`\bpoker\b`), rule(`\btexas hold\b`), rule(`\bholdem\b`),
	rule(`\bblack ?jack\b`), rule(`\bbaccarat\b`), rule(`\bsolitaire\b`),
	rule(`\bklondike\b`), rule(`\bfreecell\b`), rule(`\bpai ?gow\b`),
	rule(`\bgin rummy\b`), rule(`\brummy\b`),

	rule(`\broulette\b`), rule(`\bcraps\b`), rule(`\bkeno\b`), rule(`\bbingo\b`),

	rule(`\bslots?\b`), rule(`\bslot machine\b`), rule(`\bfruit machine\b`),
	rule(`\bone arm bandit\b`), rule(`\bcherry master\b`),

	rule(`\bvegas stakes\b`), rule(`\bcasino kid\b`), rule(`\bworld class poker\b`),
	rule(`\bcaesars palace\b`), rule(`\btrump castle\b`),
	rule(`\blas vegas dream\b`), rule(`\batlantic city action\b`),
	rule(`\bmonte carlo casino\b`),

	rule(`\bpachinko\b`), rule(`\bmah ?-?jong\b`), rule(`\bhanafuda\b`),

	rule(`\bchuck a luck\b`),
	ruleUnless(`\bwheel of fortune\b`, `\bwheel of fortune\b - `),

	rule(`\batlantic city casino\b`), rule(`\breno casino\b`),
	rule(`\briverboat casino\b`),

	rule(`\bcasino chip\b`), rule(`\bpoker chip\b`), rule(`\bgaming chip\b`),
}

// casinoExclusions veto the casino rules. Checked first: a title that
// matches any exclusion is never a casino game, whatever else matches.
var casinoExclusions = []contentRule{
	rule(`\bspider.?man\b`), rule(`\bvenom\b`), rule(`\bcarnage\b`), rule(`\blethal\b`),
	rule(`\bsuperman\b`), rule(`\bbatman\b`), rule(`\bx.?men\b`), rule(`\bavengers\b`),
	rule(`\bmarvel\b`), rule(`\bdc comics\b`), rule(`\bwolverine\b`), rule(`\bhulk\b`),
	rule(`\bcaptain america\b`), rule(`\biron man\b`), rule(`\bjustice league\b`),

	rule(`\bstar trek\b`), rule(`\bstarfleet\b`), rule(`\bbridge simulator\b`),
	rule(`\bstar wars\b`), rule(`\benterprise\b`), rule(`\bstarship\b`),
	rule(`\balien\b`), rule(`\bspace\b.*\binvaders\b`), rule(`\bgalaga\b`),

	rule(`\bskateboard\b`), rule(`\bskate\b`), rule(`\bsnowboard\b`), rule(`\bsurf\b`),
	ruleUnless(`\brace\b`, `\brace\b.*casino`),
	ruleUnless(`\btrack\b`, `\btrack\b.*casino`),
	rule(`\bfootball\b`), rule(`\bbaseball\b`), rule(`\bbasketball\b`), rule(`\bhockey\b`),

	rule(`\bpokemon\b`), rule(`\bdigimon\b`), rule(`\byu-gi-oh\b`),
	rule(`\bmagic the gathering\b`), rule(`\bduel\b.*\bmasters\b`),
	rule(`\bcard\b.*\bbattle\b`), rule(`\btcg\b`), rule(`\bccg\b`),

	ruleUnless(`\bsolitaire\b`, `\bsolitaire\b.*casino`),
	ruleUnless(`\bpyramid\b`, `\bpyramid\b.*casino`),
	rule(`\bmario\b`), rule(`\bzelda\b`), rule(`\bkirby\b`), rule(`\byoshi\b`),
	rule(`\bsonic\b`), rule(`\bmega ?man\b`), rule(`\bcastlevania\b`),
	rule(`\bmetroid\b`), rule(`\bfinal fantasy\b`), rule(`\bdragon quest\b`),

	ruleUnless(`\bbridge\b`, `\bbridge\b.*casino`),
	ruleUnless(`\bboat\b`, `\bboat\b.*casino`),
	ruleUnless(`\bchip\b`, `\bchip\b.*casino`),
	ruleUnless(`\bslot\b`, `\bslot\b.*machine`),

	rule(`\bmonopoly\b`), ruleUnless(`\brisk\b`, `\brisk\b.*casino`),
	rule(`\bscrabble\b`), rule(`\bchess\b`), rule(`\bcheckers\b`),
	ruleUnless(`\bgo\b`, `\bgo\b.*casino`),

	rule(`\bwheel of fortune\b.*\bgame show\b`),
	rule(`\bjeopardy\b`), rule(`\bfamily feud\b`), rule(`\bprice is right\b`),
	rule(`\bgame show\b`), ruleUnless(`\btrivia\b`, `\btrivia\b.*casino`),

	rule(`\bstreet fighter\b`), rule(`\bmortal kombat\b`), rule(`\btekken\b`),
	rule(`\bking of fighters\b`), rule(`\bsamurai shodown\b`),
}

// adultRules match adult-content titles.
var adultRules = []contentRule{
	rule(`\bhentai\b`), rule(`\bporno?\b`), rule(`\bxxx\b`),
	rule(`\badult\b`), rule(`\berotic\b`), rule(`\bsexy\b`),
	rule(`\bnude\b`), rule(`\bnaked\b`),
	rule(`\bbishoujo\b`), rule(`\becchi\b`), rule(`\bbishounen\b`),

	rule(`\beroges?\b`), rule(`\bgalge\b`), rule(`\botome\b`),
	rule(`\bdating sim\b`), rule(`\bvisual novel\b.*\badult\b`), rule(`\brenai\b`),

	rule(`\bsuper\s+maruo\b`), rule(`\bbishoujo\s+shashinkan\b`),
	rule(`\bstudio\s+cut\b`), rule(`\bbodycon quest\b`),
	rule(`\babakareshi musume\b`), rule(`\bhoney peach\b`),
	rule(`\bnight life\b`), rule(`\bmidnight\b.*\blove\b`),

	rule(`\bplayboy\b`), rule(`\bpenthouse\b`), rule(`\bhustler\b`),
	rule(`\bstriptease\b`), rule(`\bstrip\b.*\bpoker\b`), rule(`\blingerie\b`),

	rule(`\b18\+`), rule(`\badults? only\b`), rule(`\bmature\b.*\bcontent\b`),
	rule(`\bunlicensed\b.*\badult\b`), rule(`\bhomebrew\b.*\badult\b`),

	rule(`\bgirls?\b.*\bunlocked\b`), rule(`\bseduction\b`), rule(`\btemptation\b`),
	rule(`\bforbidden\b.*\blove\b`), rule(`\bpassion\b.*\bnight\b`),
}

// adultExclusions veto the adult rules for family titles that happen to
// contain a trigger word.
var adultExclusions = []contentRule{
	rule(`\bmario\b`), rule(`\bzelda\b`), rule(`\bpokemon\b`), rule(`\bsonic\b`),
	rule(`\bkirby\b`), rule(`\byoshi\b`), rule(`\bdonkey kong\b`),
	rule(`\bmega ?man\b`), rule(`\bfinal fantasy\b`),
	rule(`\bdragon quest\b`), rule(`\bchrono\b`), rule(`\bsecret of\b`),

	rule(`\bnight.*\btrap\b`), rule(`\bmidnight.*\bresistance\b`),
	rule(`\badult.*\bswim\b`), rule(`\bmature.*\btree\b`), rule(`\bsexy.*\bparodius\b`),

	rule(`\bnude.*\brace\b`), rule(`\bnude.*\bcar\b`),
}

func matchContent(stem string, exclusions, rules []contentRule) bool {
	for _, r := range exclusions {
		if r.fires(stem) {
			return false
		}
	}
	for _, r := range rules {
		if r.fires(stem) {
			return true
		}
	}
	return false
}

func (r contentRule) fires(stem string) bool {
	if !r.Pattern.MatchString(stem) {
		return false
	}
	return r.Unless == nil || !r.Unless.MatchString(stem)
}

// IsCasinoTitle reports whether a filename stem names a gambling game.
// Exclusions run first and are final.
func IsCasinoTitle(stem string) bool {
	return matchContent(stem, casinoExclusions, casinoRules)
}

// IsAdultTitle reports whether a filename stem names an adult game.
// Exclusions run first and are final.
func IsAdultTitle(stem string) bool {
	return matchContent(stem, adultExclusions, adultRules)
}
