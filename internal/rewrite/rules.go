// Package rewrite applies ordered replacement rules to source files in place.
//
// A Ruleset is an ordered list of rules; each rule sees the output of the
// previous one within the same pass. Files are rewritten only when the
// transformed text differs from what is on disk, and a failure on one file
// never stops the others.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule transforms text and reports how many occurrences it replaced.
type Rule interface {
	Apply(text string) (string, int)
	String() string
}

// Literal replaces every occurrence of From with To.
// A Literal whose From equals To is a no-op and reports zero replacements.
type Literal struct {
	From string
	To   string
}

// Apply implements Rule.
func (l Literal) Apply(text string) (string, int) {
	if l.From == "" || l.From == l.To {
		return text, 0
	}
	n := strings.Count(text, l.From)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, l.From, l.To), n
}

func (l Literal) String() string {
	return fmt.Sprintf("%q -> %q", l.From, l.To)
}

// Pattern replaces every match of a regular expression using a template
// that may reference capture groups (${1}).
type Pattern struct {
	re       *regexp.Regexp
	template string
}

// NewPattern compiles expr into a Pattern rule.
// Panics if expr is not a valid regular expression; rule tables are static.
func NewPattern(expr, template string) Pattern {
	return Pattern{re: regexp.MustCompile(expr), template: template}
}

// Apply implements Rule.
func (p Pattern) Apply(text string) (string, int) {
	n := len(p.re.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0
	}
	return p.re.ReplaceAllString(text, p.template), n
}

func (p Pattern) String() string {
	return fmt.Sprintf("/%s/ -> %q", p.re.String(), p.template)
}

// Ruleset is a named, ordered list of rules.
type Ruleset struct {
	Name  string
	Rules []Rule
}

// Apply runs every rule in order over text.
// It returns the transformed text and the total number of replacements.
func (rs Ruleset) Apply(text string) (string, int) {
	total := 0
	for _, r := range rs.Rules {
		var n int
		text, n = r.Apply(text)
		total += n
	}
	return text, total
}

// Literals builds literal rules from (from, to) pairs, keeping their order.
func Literals(pairs [][2]string) []Rule {
	rules := make([]Rule, len(pairs))
	for i, p := range pairs {
		rules[i] = Literal{From: p[0], To: p[1]}
	}
	return rules
}
