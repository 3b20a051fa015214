package extract

import "golang.org/x/net/html"

// RemoveBoilerplate removes structural noise from the tree in a single
// parent-first depth-first pass. A removed node's children are never
// visited, so whole subtrees go in one step. Running the filter again
// on an already-filtered tree changes nothing.
//
// Precedence: tag deny beats everything; the allow override beats a
// lexicon match; otherwise a lexicon match removes the node.
func RemoveBoilerplate(n *html.Node, rules Rules) {
	// Snapshot the next sibling before any removal so detaching the
	// current child cannot skip or repeat visits.
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if removable(c, rules) {
			Remove(c)
			continue
		}
		RemoveBoilerplate(c, rules)
	}
}

func removable(n *html.Node, rules Rules) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if structuralTags[n.Data] {
		return false
	}
	if rules.DenyTags[n.Data] {
		return true
	}
	attrs := classAndID(attrVal(n, "id"), attrVal(n, "class"))
	if !matchesAny(attrs, rules.DenyTokens) {
		return false
	}
	if isLandmark(n) || matchesAny(attrs, rules.AllowTokens) {
		return false
	}
	return true
}
