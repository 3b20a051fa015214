package extract

import "golang.org/x/net/html"

// Scoring configures the main-content selector. Weights fix the role of
// each signal: visible text counts for, link-heavy text counts against,
// explicit landmarks get a head start. The values in DefaultScoring were
// tuned against a mix of article pages, documentation sites and news
// front pages.
type Scoring struct {
	// ParagraphWeight is added per paragraph-level block under a
	// candidate.
	ParagraphWeight float64

	// LandmarkBonus is added when the candidate root is an explicit
	// content landmark (article, main, role=main).
	LandmarkBonus float64

	// LinkPenalty scales the link-density discount: a candidate whose
	// text is entirely inside hyperlinks loses LinkPenalty*100% of its
	// text score.
	LinkPenalty float64

	// MinScore is the absolute score a winner must reach. Below it the
	// selector falls back to the whole document body.
	MinScore float64

	// MinBlockParagraphs and MinBlockText define the density threshold
	// for non-landmark candidates: at least this many paragraph-level
	// direct children with at least this much combined text.
	MinBlockParagraphs int
	MinBlockText       int
}

// DefaultScoring returns the standard selector weights.
func DefaultScoring() Scoring {
	return Scoring{
		ParagraphWeight:    25,
		LandmarkBonus:      750,
		LinkPenalty:        1.0,
		MinScore:           50,
		MinBlockParagraphs: 2,
		MinBlockText:       120,
	}
}

type candidate struct {
	node     *html.Node
	score    float64
	landmark bool
}

// MainContent returns the subtree most likely to hold the page's primary
// content. Candidates are explicit landmarks plus any block dense with
// paragraph children; each is scored by visible text length discounted
// by link density, plus paragraph count and a landmark bonus. Ties go to
// landmarks, then to the earliest candidate in document order. If no
// candidate reaches MinScore the document body is returned, so every
// parseable page yields content. The tree is not mutated.
func MainContent(doc *html.Node, scoring Scoring) *html.Node {
	var best *candidate
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			landmark := isLandmark(n)
			if landmark && len(Text(n, true)) == 0 {
				// Empty landmarks (JS app shells render into these)
				// carry no extractable content.
				landmark = false
			}
			if landmark || denseBlock(n, scoring) {
				c := &candidate{
					node:     n,
					score:    score(n, landmark, scoring),
					landmark: landmark,
				}
				// Walking in document order, so on a full tie the
				// earlier candidate is kept.
				if best == nil || c.score > best.score || (c.score == best.score && c.landmark && !best.landmark) {
					best = c
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if best == nil || best.score < scoring.MinScore {
		if body := Body(doc); body != nil {
			return body
		}
		return doc
	}
	return best.node
}

// denseBlock reports whether the node has enough paragraph-level direct
// children with enough combined text to be a candidate on its own.
func denseBlock(n *html.Node, scoring Scoring) bool {
	count, textLen := 0, 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && paragraphTags[c.Data] {
			count++
			textLen += len(Text(c, true))
		}
	}
	return count >= scoring.MinBlockParagraphs && textLen >= scoring.MinBlockText
}

func score(n *html.Node, landmark bool, scoring Scoring) float64 {
	textLen := float64(len(Text(n, true)))
	s := textLen
	if textLen > 0 {
		density := float64(linkTextLen(n)) / textLen
		s -= scoring.LinkPenalty * density * textLen
	}
	s += scoring.ParagraphWeight * float64(countParagraphs(n))
	if landmark {
		s += scoring.LandmarkBonus
	}
	return s
}

// countParagraphs counts paragraph-level blocks in the subtree,
// including the root itself.
func countParagraphs(n *html.Node) int {
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && paragraphTags[n.Data] {
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return count
}

// linkTextLen measures the visible text inside hyperlinks under n,
// using the same collapsed measure as Text so densities stay in [0, 1].
func linkTextLen(n *html.Node) int {
	total := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			total += len(Text(n, true))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return total
}
