package parsey

import (
	"regexp"
)

// A Span is a half-open region of the remaining input, measured from the start
// of the string handed to a Matcher.
type Span struct {
	Offset int
	Length int
}

// End returns the first offset past the span.
func (s Span) End() int { return s.Offset + s.Length }

// A Matcher reports whether it matches at the start of the remaining input.
//
// On success it returns an ordered, non-empty sequence of spans. The first
// span is the entire matched region, which the engine consumes from the
// input. The last span (or the one selected by Rule.Capture) is the capture
// region, which becomes the payload recursively parsed into the node's
// children. Returning true with an empty sequence is a contract violation and
// aborts the parse.
type Matcher interface {
	Match(input string) ([]Span, bool)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(input string) ([]Span, bool)

func (m MatcherFunc) Match(input string) ([]Span, bool) { return m(input) }

// Pattern compiles a regular expression into a Matcher.
//
// The whole match is the entire region, and each capturing group contributes
// one span, in order. Groups that did not participate in the match are
// omitted. Patterns are not implicitly anchored; a rule that should only
// match at the current position must anchor itself with "^".
func Pattern(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &patternMatcher{re}, nil
}

// MustPattern is like Pattern but panics if the expression is invalid.
func MustPattern(pattern string) Matcher {
	m, err := Pattern(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

type patternMatcher struct {
	re *regexp.Regexp
}

func (p *patternMatcher) Match(input string) ([]Span, bool) {
	indices := p.re.FindStringSubmatchIndex(input)
	if indices == nil {
		return nil, false
	}
	spans := make([]Span, 0, len(indices)/2)
	for i := 0; i < len(indices); i += 2 {
		if indices[i] == -1 {
			continue
		}
		spans = append(spans, Span{Offset: indices[i], Length: indices[i+1] - indices[i]})
	}
	return spans, true
}

func (p *patternMatcher) String() string { return p.re.String() }
