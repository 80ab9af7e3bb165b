package rewrite

import (
	"regexp"
	"strings"
)

// Rule is a single compiled substitution: a pattern over raw assembly text
// and the template that replaces each of its matches.
type Rule struct {
	// Name identifies the rule in result metadata and verbose output
	Name string

	pattern  *regexp.Regexp
	template string
}

// rules is the fixed table, applied strictly in this order. Each rule runs
// globally over the output of the previous one. The templates reproduce the
// historical mnemonic prefixing exactly, including the register-fed suffix
// of the first rule; the .asm corpus is normalized against this behavior.
var rules = []Rule{
	{
		// LD/LDA/LDAW dest, [simple_label]
		Name:     "load-label",
		pattern:  regexp.MustCompile(`\b(LDA?W?)\s+([A-Z]{2}),\s*\[([a-zA-Z_][a-zA-Z0-9_]*)\]`),
		template: `LDA${2} ${2}, ${3}`,
	},
	{
		// LD/LDAB/LDAW dest, [expr with + or -]
		Name:     "load-expr",
		pattern:  regexp.MustCompile(`\b(LDA?W?B?)\s+([A-Z]{2}),\s*\[([^\]]+[+\-][^\]]+)\]`),
		template: `LDA${1} ${2}, (${3})`,
	},
	{
		// LD/LDAB/LDAW [dest], source (store to memory)
		Name:     "store-label",
		pattern:  regexp.MustCompile(`\b(LDA?W?B?)\s+\[([a-zA-Z_][a-zA-Z0-9_]*)\],\s*([A-Z]{2})`),
		template: `LDA${1} ${2}, ${3}`,
	},
	{
		// LD/LDAB/LDAW [expr], source (store to memory with expression)
		Name:     "store-expr",
		pattern:  regexp.MustCompile(`\b(LDA?W?B?)\s+\[([^\]]+[+\-][^\]]+)\],\s*([A-Z]{2})`),
		template: `LDA${1} (${2}), ${3}`,
	},
}

// Replacement is a literal replacement pair applied after the built-in rules
type Replacement struct {
	// Old is the text to replace
	Old string

	// New is the replacement text
	New string
}

// RuleHit records the substitutions a single rule made during one rewrite
type RuleHit struct {
	// Rule is the name of the rule that matched
	Rule string

	// Count is the number of substitutions the rule made
	Count int
}

// Result contains the outcome of rewriting one piece of text
type Result struct {
	// Original is the text before rewriting
	Original string

	// Text is the text after rewriting
	Text string

	// Changed indicates whether Text differs from Original
	Changed bool

	// Hits lists the rules that matched, in application order
	Hits []RuleHit
}

// Replacements returns the total number of substitutions across all rules
func (r *Result) Replacements() int {
	total := 0
	for _, hit := range r.Hits {
		total += hit.Count
	}
	return total
}

// Rewriter defines the interface for bracket-operand rewriting
type Rewriter interface {
	// Rewrite converts bracketed memory operands in text to the
	// parenthesized dialect, returning the result with match metadata
	Rewrite(text string) *Result
}

// BracketRewriter implements Rewriter using the fixed rule table plus any
// configured literal replacements. It holds no mutable state and is safe
// for concurrent use.
type BracketRewriter struct {
	rules  []Rule
	extras []Replacement
}

// New creates a BracketRewriter with the built-in rules only
func New() *BracketRewriter {
	return &BracketRewriter{rules: rules}
}

// NewWithReplacements creates a BracketRewriter that applies the given
// literal replacements after the built-in rules, in declaration order
func NewWithReplacements(extras []Replacement) *BracketRewriter {
	return &BracketRewriter{rules: rules, extras: extras}
}

// Rewrite implements Rewriter.Rewrite
func (b *BracketRewriter) Rewrite(text string) *Result {
	result := &Result{Original: text}

	// Apply each rule to the output of the previous one
	current := text
	for _, rule := range b.rules {
		count := len(rule.pattern.FindAllStringIndex(current, -1))
		if count == 0 {
			continue
		}
		current = rule.pattern.ReplaceAllString(current, rule.template)
		result.Hits = append(result.Hits, RuleHit{Rule: rule.Name, Count: count})
	}

	// Apply literal replacements after the rule table
	for _, rep := range b.extras {
		// Skip empty pairs
		if rep.Old == "" {
			continue
		}
		count := strings.Count(current, rep.Old)
		if count == 0 {
			continue
		}
		current = strings.ReplaceAll(current, rep.Old, rep.New)
		result.Hits = append(result.Hits, RuleHit{Rule: "literal:" + rep.Old, Count: count})
	}

	result.Text = current
	result.Changed = current != text
	return result
}
