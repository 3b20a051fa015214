package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/flyingcloud-code/mcp"
)

var _ mcp.Extractor = (*Engine)(nil)

// Engine extracts main content from HTML pages using the structural
// heuristics in this package: parse leniently, filter boilerplate,
// select the main content region, serialize it back to clean HTML.
type Engine struct {
	rules   Rules
	scoring Scoring
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules overrides the boilerplate filtering ruleset.
func WithRules(rules Rules) Option {
	return func(e *Engine) { e.rules = rules }
}

// WithScoring overrides the selector weights.
func WithScoring(scoring Scoring) Option {
	return func(e *Engine) { e.scoring = scoring }
}

// NewEngine creates an Engine with the default rules and scoring.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{rules: DefaultRules(), scoring: DefaultScoring()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements mcp.Extractor. Each call parses a fresh tree, so
// concurrent extractions share no state.
func (e *Engine) Extract(rawHTML string) (*mcp.ExtractResult, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}
	title := Title(doc)
	RemoveBoilerplate(doc, e.rules)
	main := MainContent(doc, e.scoring)

	var sb strings.Builder
	if err := html.Render(&sb, main); err != nil {
		return nil, mcp.Errorf(mcp.EEXTRACT, "serialize content region: %s", err)
	}
	if title == "" {
		title = FirstHeading(main)
	}
	return &mcp.ExtractResult{Title: title, ContentHTML: sb.String()}, nil
}
