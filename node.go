package parsey

import "fmt"

// A Node is one element of a parse result.
//
// The result of a parse is an ordered sequence of top-level nodes, not a
// single root; the input's structure is whatever the rules found, with
// unmatched runs surviving as Text.
type Node interface {
	fmt.Stringer
	node()
}

// Text is a run of input that no rule matched.
type Text string

func (Text) node() {}

// A Branch is a named node produced by a rule match. Children holds the
// recursively parsed capture region, in input order. Option is nil unless
// the rule attached one; a rule whose Optioner returns nil is
// indistinguishable from a rule with no option.
type Branch struct {
	Name     string
	Children []Node
	Option   interface{}
}

func (*Branch) node() {}
