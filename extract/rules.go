package extract

import "strings"

// Rules configures the boilerplate filter. The zero value removes
// nothing; use DefaultRules for the standard ruleset.
type Rules struct {
	// DenyTags are removed outright with their whole subtree,
	// regardless of attributes.
	DenyTags map[string]bool

	// DenyTokens are matched case-insensitively as substrings of a
	// node's id and class attributes. A match removes the node unless
	// an allow override applies.
	DenyTokens []string

	// AllowTokens veto a DenyTokens match: a node whose id or class
	// contains one of these is kept even if it also matches a deny
	// token. Landmark elements (article, main, role=main) are always
	// kept the same way. Allow never overrides DenyTags.
	AllowTokens []string
}

// DefaultRules returns the standard filtering ruleset.
func DefaultRules() Rules {
	return Rules{
		DenyTags: map[string]bool{
			"script":   true,
			"style":    true,
			"noscript": true,
			"template": true,
			"nav":      true,
			"header":   true,
			"footer":   true,
			"aside":    true,
			"form":     true,
			"button":   true,
			"iframe":   true,
		},
		DenyTokens: []string{
			"sidebar",
			"menu",
			"advert",
			"banner",
			"promo",
			"footer",
			"header",
			"comment",
			"related",
			"share",
			"social",
			"cookie",
			"popup",
			"modal",
			"subscribe",
			"breadcrumb",
		},
		AllowTokens: []string{
			"article",
			"content",
			"post",
			"main",
		},
	}
}

// classAndID returns the node's id and class attribute values joined
// and lowercased, for lexicon matching.
func classAndID(id, class string) string {
	return strings.ToLower(id + " " + class)
}

// matchesAny reports whether s contains any of the tokens.
func matchesAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
