// Package parsey is a rule-driven recursive descent matcher. It converts
// flat text into a nested tree by repeatedly applying a prioritized set of
// named rules, without a grammar specification or a generated lexer/parser.
//
// A rule pairs a name with a Matcher. At each position the first rule whose
// matcher succeeds wins; its matched region is consumed, its capture region
// is recursively parsed, and the result becomes a named Branch. Text no rule
// matches survives as literal Text nodes:
//
//     rules := parsey.RuleSet{
//         {Name: "vowel", Matcher: parsey.MustPattern(`^[aeiou]+`)},
//         {Name: "consonant", Matcher: parsey.MustPattern(`^[^aeiou]+`)},
//     }
//     nodes, err := parsey.Parse("test", rules)
//     // (consonant "t") (vowel "e") (consonant "st")
//
// Each rule can reshape both its node and the rule set used for the
// recursive parse of its capture region:
//
//     - Capture selects which matcher span becomes the payload.
//     - Format rewrites the payload before it is parsed.
//     - Option attaches a value, literal or computed, to the node.
//     - Ignore consumes the match but emits nothing.
//     - Skip splices the children into the parent without a wrapping node.
//     - Exclude/Include filter and extend the child rule set. By default a
//       rule excludes its own name, so it cannot match its capture forever.
//     - Rules replaces the child rule set outright.
//
// Nesting this way handles simple balanced grammars (s-expressions,
// tag-delimited markup, bracketed structures) directly:
//
//     bracket := parsey.Rule{Name: "bracket", Matcher: parsey.MustPattern(`\((.*?)\)`)}
//     nodes, err := parsey.Parse("(test)", parsey.RuleSet{bracket, vowel, consonant})
//     // (bracket (consonant "t") (vowel "e") (consonant "st"))
//
// There is no backtracking across sibling rules and no ambiguity resolution:
// rule order is priority order, first match wins.
//
// Rule sets can also be loaded from declarative TOML or YAML definitions;
// see the ruledef subpackage.
package parsey
