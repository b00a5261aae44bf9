package parsey

import "fmt"

// Error represents an error while parsing.
//
// Every error reported by this package implements it.
type Error interface {
	error
	// Rule names the rule whose matcher or configuration was at fault.
	Rule() string
}

// A ContractError is returned by Parse when a matcher or rule violates its
// contract: a missing matcher, an empty span sequence, a capture index
// outside the span sequence, a span outside the remaining input, or a match
// that consumes nothing. The parse is aborted; no partial result is returned.
type ContractError struct {
	RuleName string
	Message  string
}

func (c *ContractError) Error() string { return fmt.Sprintf("rule %q: %s", c.RuleName, c.Message) }

func (c *ContractError) Rule() string { return c.RuleName }

func contractErrorf(rule, format string, args ...interface{}) *ContractError {
	return &ContractError{RuleName: rule, Message: fmt.Sprintf(format, args...)}
}
