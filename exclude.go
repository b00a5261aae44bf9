package parsey

import "reflect"

// An Excluder identifies rules to drop when deriving a child rule set.
type Excluder interface {
	Excludes(r Rule) bool
}

// ExcludeName drops every rule with the given name.
type ExcludeName string

func (e ExcludeName) Excludes(r Rule) bool { return r.Name == string(e) }

// ExcludeOption drops rules of the given name whose attached literal option
// equals Option. Rules with a computed option, or none, are kept.
type ExcludeOption struct {
	Name   string
	Option interface{}
}

func (e ExcludeOption) Excludes(r Rule) bool {
	if r.Name != e.Name {
		return false
	}
	lit, ok := r.Option.(literalOption)
	return ok && reflect.DeepEqual(lit.value, e.Option)
}

// childRules derives the rule set for the recursive parse of a match's
// captured text. The derived set is always a fresh slice; sibling matches at
// the same depth continue to see the set passed into their own frame.
func childRules(matched Rule, current RuleSet) RuleSet {
	if matched.Rules != nil {
		return matched.Rules
	}
	excluders := matched.Exclude
	if excluders == nil {
		// Self-exclusion by name, so a rule cannot match its own capture
		// forever.
		excluders = []Excluder{ExcludeName(matched.Name)}
	}
	derived := make(RuleSet, 0, len(matched.Include)+len(current))
	derived = append(derived, matched.Include...)
next:
	for _, r := range current {
		for _, e := range excluders {
			if e.Excludes(r) {
				continue next
			}
		}
		derived = append(derived, r)
	}
	return derived
}
