package wiki

import (
	"regexp"
	"strings"
)

var (
	locatedPattern = regexp.MustCompile(
		`(?:^|[^\p{L}])(?i:located|situated|localizad[oa]|situad[oa]|localiza-se|encontra-se|fica)\s+` +
			`(?i:in|at|on|em|na|no|nas|nos|à|ao)\s+([^.;]+)`)

	streetPattern = regexp.MustCompile(
		`(?i)(?:^|[^\p{L}])(?:street|avenue|square|road|boulevard|rua|avenida|praça|largo|alameda|travessa)(?:[^\p{L}]|$)`)

	cityRegionPattern = regexp.MustCompile(
		`\p{Lu}[\p{L}'-]+(?:\s+\p{Lu}[\p{L}'-]+)*,\s*\p{Lu}[\p{L}'-]+(?:\s+\p{Lu}[\p{L}'-]+)*`)

	prepositionPattern = regexp.MustCompile(
		`(?:^|\s)(?:in|at|from|em|na|no|de)\s+(\p{Lu}\p{L}+(?:\s+\p{Lu}\p{L}+)*)`)

	clauseSplitter = regexp.MustCompile(`[.;]`)
)

// InferAddress guesses an address from an article extract. It tries, in
// order: "located in X" phrasing, the first clause naming a street, avenue
// or square, a "City, Region" pair, and a capitalized phrase after a
// preposition. When nothing matches it returns title.
func InferAddress(extract, title string) string {
	extract = strings.TrimSpace(extract)
	if extract == "" {
		return title
	}

	if m := locatedPattern.FindStringSubmatch(extract); m != nil {
		if s := strings.TrimSpace(m[1]); s != "" {
			return s
		}
	}

	for _, clause := range clauseSplitter.Split(extract, -1) {
		if streetPattern.MatchString(clause) {
			return strings.TrimSpace(clause)
		}
	}

	if m := cityRegionPattern.FindString(extract); m != "" {
		return m
	}

	if m := prepositionPattern.FindStringSubmatch(extract); m != nil {
		return m[1]
	}

	return title
}
