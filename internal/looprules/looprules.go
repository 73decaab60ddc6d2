package looprules

import "fmt"

// Rule represents a forsight rule code (FOR-series).
type Rule int

const (
	ruleInvalid Rule = iota

	FOR000RangeLoopRecognized
	FOR100CounterLintSuppressed
	FOR900DumpSyntax
)

// String returns the canonical code and short name of the rule.
// Example: "FOR000: RangeLoopRecognized"
func (r Rule) String() string {
	switch r {
	case FOR000RangeLoopRecognized:
		return "FOR000: RangeLoopRecognized"
	case FOR100CounterLintSuppressed:
		return "FOR100: CounterLintSuppressed"
	case FOR900DumpSyntax:
		return "FOR900: DumpSyntax"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case FOR000RangeLoopRecognized:
		return "The construct is the compiler's own expansion of a bounded-range for loop."
	case FOR100CounterLintSuppressed:
		return "A manual-counter diagnostic falls inside a recognized expansion and is not actionable."
	case FOR900DumpSyntax:
		return "The lowered tree dump could not be decoded."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors — for readability and stable call sites.

func RangeLoopRecognized() Rule   { return FOR000RangeLoopRecognized }
func CounterLintSuppressed() Rule { return FOR100CounterLintSuppressed }
func DumpSyntax() Rule            { return FOR900DumpSyntax }
