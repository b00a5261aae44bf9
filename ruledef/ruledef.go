// Package ruledef builds parsey rule sets from declarative definitions in
// TOML or YAML.
//
// A definition file is a list of rules:
//
//     [[rules]]
//     name = "bracket"
//     pattern = '\((.*?)\)'
//
//     [[rules]]
//     name = "vowel"
//     pattern = '^[aeiou]+'
//
// Each rule supports the subset of the Go API that is expressible as data:
// pattern (compiled with parsey.Pattern), capture, format (a replacement
// string), option (a literal), ignore, skip, exclude (a list of names with
// an optional option), and nested include/rules definitions. Functional
// matchers, formatters and options are Go-API-only.
package ruledef

import (
	"fmt"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v2"

	parsey "github.com/ScrimpyCat/Parsey"
)

type document struct {
	Rules []definition `toml:"rules" yaml:"rules"`
}

type definition struct {
	Name    string       `toml:"name" yaml:"name"`
	Pattern string       `toml:"pattern" yaml:"pattern"`
	Capture *int         `toml:"capture" yaml:"capture"`
	Format  *string      `toml:"format" yaml:"format"`
	Option  interface{}  `toml:"option" yaml:"option"`
	Ignore  bool         `toml:"ignore" yaml:"ignore"`
	Skip    bool         `toml:"skip" yaml:"skip"`
	Exclude []exclusion  `toml:"exclude" yaml:"exclude"`
	Include []definition `toml:"include" yaml:"include"`
	Rules   []definition `toml:"rules" yaml:"rules"`
}

type exclusion struct {
	Name   string      `toml:"name" yaml:"name"`
	Option interface{} `toml:"option" yaml:"option"`
}

// FromTOML compiles a TOML rule definition document into a rule set.
func FromTOML(data []byte) (parsey.RuleSet, error) {
	doc := &document{}
	if err := toml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return compile(doc.Rules)
}

// FromYAML compiles a YAML rule definition document into a rule set.
func FromYAML(data []byte) (parsey.RuleSet, error) {
	doc := &document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return compile(doc.Rules)
}

// Must takes the result of FromTOML or FromYAML and panics on error.
func Must(rules parsey.RuleSet, err error) parsey.RuleSet {
	if err != nil {
		panic(err)
	}
	return rules
}

func compile(defs []definition) (parsey.RuleSet, error) {
	rules := make(parsey.RuleSet, 0, len(defs))
	for _, def := range defs {
		rule, err := compileRule(def)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func compileRule(def definition) (parsey.Rule, error) {
	if def.Name == "" {
		return parsey.Rule{}, fmt.Errorf("rule with no name")
	}
	if def.Pattern == "" {
		return parsey.Rule{}, fmt.Errorf("rule %q: missing pattern", def.Name)
	}
	matcher, err := parsey.Pattern(def.Pattern)
	if err != nil {
		return parsey.Rule{}, fmt.Errorf("rule %q: %s", def.Name, err)
	}
	rule := parsey.Rule{
		Name:    def.Name,
		Matcher: matcher,
		Capture: def.Capture,
		Ignore:  def.Ignore,
		Skip:    def.Skip,
	}
	if def.Format != nil {
		rule.Format = parsey.Replacement(*def.Format)
	}
	if def.Option != nil {
		rule.Option = parsey.LiteralOption(def.Option)
	}
	if def.Exclude != nil {
		// Distinguishes "exclude = []" (exclude nothing) from an absent key
		// (default self-exclusion).
		rule.Exclude = make([]parsey.Excluder, 0, len(def.Exclude))
		for _, e := range def.Exclude {
			if e.Name == "" {
				return parsey.Rule{}, fmt.Errorf("rule %q: exclusion with no name", def.Name)
			}
			if e.Option == nil {
				rule.Exclude = append(rule.Exclude, parsey.ExcludeName(e.Name))
			} else {
				rule.Exclude = append(rule.Exclude, parsey.ExcludeOption{Name: e.Name, Option: e.Option})
			}
		}
	}
	if def.Include != nil {
		if rule.Include, err = compile(def.Include); err != nil {
			return parsey.Rule{}, fmt.Errorf("rule %q: include: %s", def.Name, err)
		}
	}
	if def.Rules != nil {
		if rule.Rules, err = compile(def.Rules); err != nil {
			return parsey.Rule{}, fmt.Errorf("rule %q: rules: %s", def.Name, err)
		}
	}
	return rule, nil
}
