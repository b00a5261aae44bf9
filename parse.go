package parsey

import (
	"strings"
	"unicode/utf8"
)

// A ParseOption modifies the behaviour of a single Parse call.
type ParseOption func(*driver)

type driver struct {
	trace traceWriter
}

// A frame is one recursion scope: the parse of one capture region (or, for
// the root frame, of the whole input) under one derived rule set.
//
// Nesting depth is caller-controlled and unbounded, so frames live on an
// explicit stack rather than the goroutine stack.
type frame struct {
	parent *frame

	// The match that opened this frame. Zero for the root frame.
	rule     Rule
	spans    []Span
	captured string // original captured text, before any Formatter

	input string
	rules RuleSet
	nodes []Node
	run   strings.Builder // pending literal run
}

// Parse applies the rule set to input and returns the ordered top-level
// nodes. There is no implicit root: siblings at the top level are returned
// as-is.
//
// At each position the first rule (in priority order) whose matcher succeeds
// is applied, its capture region is recursively parsed under the rule set
// derived from Rule.Rules/Exclude/Include, and the resulting node is shaped
// by the rule's Format, Option, Ignore and Skip settings. Positions no rule
// matches are consumed one rune at a time and coalesced into Text nodes.
//
// Parsing with an empty rule set is valid and yields the entire input as a
// single Text node. A contract violation by any rule aborts the parse.
func Parse(input string, rules RuleSet, options ...ParseOption) ([]Node, error) {
	d := &driver{}
	for _, option := range options {
		option(d)
	}
	root := &frame{input: input, rules: rules}
	stack := []*frame{root}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		depth := len(stack) - 1

		if f.input == "" {
			f.closeRun()
			stack = stack[:len(stack)-1]
			if f.parent == nil {
				break
			}
			d.trace.close(depth, f.rule)
			f.complete()
			continue
		}

		rule, spans, matched, err := f.rules.match(f.input)
		if err != nil {
			return nil, err
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(f.input)
			d.trace.literal(depth, f.input[:size])
			f.run.WriteString(f.input[:size])
			f.input = f.input[size:]
			continue
		}

		entire := spans[0]
		if entire.Offset < 0 || entire.Length < 0 || entire.End() > len(f.input) {
			return nil, contractErrorf(rule.Name, "entire span [%d, %d) outside remaining input", entire.Offset, entire.End())
		}
		if entire.End() == 0 {
			return nil, contractErrorf(rule.Name, "matched without consuming input")
		}
		index := len(spans) - 1
		if rule.Capture != nil {
			index = *rule.Capture
		}
		if index < 0 || index >= len(spans) {
			return nil, contractErrorf(rule.Name, "capture index %d outside span sequence of length %d", index, len(spans))
		}
		capture := spans[index]
		if capture.Offset < 0 || capture.Length < 0 || capture.End() > entire.End() {
			return nil, contractErrorf(rule.Name, "capture span [%d, %d) outside consumed region [0, %d)", capture.Offset, capture.End(), entire.End())
		}

		d.trace.match(depth, rule, f.input[:entire.End()])
		captured := f.input[capture.Offset:capture.End()]
		f.input = f.input[entire.End():]

		if rule.Ignore {
			// Consumed, invisible. The pending literal run stays open so text
			// on either side of the ignored region coalesces.
			continue
		}
		f.closeRun()

		payload := captured
		if rule.Format != nil {
			payload = rule.Format.Format(captured)
		}
		stack = append(stack, &frame{
			parent:   f,
			rule:     rule,
			spans:    spans,
			captured: captured,
			input:    payload,
			rules:    childRules(rule, f.rules),
		})
	}
	return root.nodes, nil
}

// closeRun flushes the pending literal run, if any, as a single Text node.
func (f *frame) closeRun() {
	if f.run.Len() == 0 {
		return
	}
	f.nodes = append(f.nodes, Text(f.run.String()))
	f.run.Reset()
}

// complete shapes the frame's accumulated children and delivers them to the
// parent frame.
func (f *frame) complete() {
	if f.rule.Skip {
		f.parent.nodes = append(f.parent.nodes, f.nodes...)
		return
	}
	branch := &Branch{Name: f.rule.Name, Children: f.nodes}
	if f.rule.Option != nil {
		branch.Option = f.rule.Option.Option(f.captured, f.spans)
	}
	f.parent.nodes = append(f.parent.nodes, branch)
}
