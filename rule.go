package parsey

// A Rule is a named, prioritized matching directive.
//
// Names need not be unique; several rules may share a name and remain
// distinct candidates. Only Name and Matcher are required.
type Rule struct {
	// Name of the node produced by this rule. Also the default exclusion key.
	Name string
	// Matcher tried against the remaining input.
	Matcher Matcher
	// Capture selects which span is the capture region. Nil selects the last
	// span. Out-of-range indices abort the parse.
	Capture *int
	// Format transforms the captured text before it is recursively parsed.
	Format Formatter
	// Option computes a value attached to the resulting node.
	Option Optioner
	// Ignore consumes the matched region but produces no node.
	Ignore bool
	// Skip splices the matched region's children directly into the parent,
	// without a wrapping node.
	Skip bool
	// Exclude names the rules removed from the child rule set. Nil applies
	// the default, which removes every rule sharing this rule's name. An
	// empty non-nil slice removes nothing.
	Exclude []Excluder
	// Include is prepended, highest priority, to the child rule set.
	Include RuleSet
	// Rules, if non-nil, replaces the child rule set outright. Exclude and
	// Include are ignored.
	Rules RuleSet
}

// A RuleSet is an ordered sequence of rules. Earlier rules have higher
// priority: the first rule whose matcher succeeds at an offset wins, and no
// later rule is reconsidered.
type RuleSet []Rule

// match returns the first rule, in priority order, whose matcher succeeds on
// the remaining input.
func (r RuleSet) match(input string) (Rule, []Span, bool, error) {
	for _, rule := range r {
		if rule.Matcher == nil {
			return Rule{}, nil, false, contractErrorf(rule.Name, "rule has no matcher")
		}
		spans, ok := rule.Matcher.Match(input)
		if !ok {
			continue
		}
		if len(spans) == 0 {
			return Rule{}, nil, false, contractErrorf(rule.Name, "matcher returned an empty span sequence")
		}
		return rule, spans, true, nil
	}
	return Rule{}, nil, false, nil
}

// CaptureIndex returns a pointer suitable for Rule.Capture.
func CaptureIndex(i int) *int { return &i }

// A Formatter transforms captured text before it becomes a node's payload.
type Formatter interface {
	Format(captured string) string
}

// FormatFunc adapts a function to the Formatter interface.
type FormatFunc func(captured string) string

func (f FormatFunc) Format(captured string) string { return f(captured) }

// Replacement returns a Formatter that discards the captured text and
// substitutes a constant string.
func Replacement(s string) Formatter {
	return FormatFunc(func(string) string { return s })
}

// An Optioner computes the option value attached to a rule's node. It is
// called with the original captured text, before any Formatter is applied,
// and the complete span sequence the matcher returned.
type Optioner interface {
	Option(captured string, spans []Span) interface{}
}

// OptionFunc adapts a function to the Optioner interface.
type OptionFunc func(captured string, spans []Span) interface{}

func (f OptionFunc) Option(captured string, spans []Span) interface{} { return f(captured, spans) }

// LiteralOption returns an Optioner that attaches a constant value. Only
// literal options participate in ExcludeOption matching.
func LiteralOption(value interface{}) Optioner {
	return literalOption{value}
}

type literalOption struct {
	value interface{}
}

func (l literalOption) Option(string, []Span) interface{} { return l.value }
