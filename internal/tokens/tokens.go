// Package tokens repairs doubled Tailwind class-name prefixes such as
// border-border-card or text-text-muted left behind by earlier theme edits.
package tokens

import "github.com/JonMunkholm/obratools/internal/rewrite"

// knownDuplicates are fixed literal repairs, applied before the collapse
// patterns. Entries mapping a token to itself are kept as no-ops.
var knownDuplicates = [][2]string{
	{"border-border-card-card", "border-border-card"},
	{"text-text-primary", "text-text-primary"},
	{"text-text-secondary", "text-text-secondary"},
	{"text-text-muted", "text-text-muted"},
	{"bg-bg-surface", "bg-bg-surface"},
	{"bg-bg-app", "bg-bg-app"},
	{"bg-bg-sidebar", "bg-bg-sidebar"},
	{"text-accent-gold-soft", "text-accent-gold-soft"},
	{"text-status-success", "text-status-success"},
	{"text-status-warning", "text-status-warning"},
	{"text-status-danger", "text-status-danger"},
	{"text-status-info", "text-status-info"},
}

// Ruleset returns the normalizer rules: literal repairs first, then the
// prefix-prefix-suffix collapses for border, text and bg.
func Ruleset() rewrite.Ruleset {
	rules := rewrite.Literals(knownDuplicates)
	rules = append(rules,
		rewrite.NewPattern(`border-border-([a-z-]+)`, "border-${1}"),
		rewrite.NewPattern(`text-text-([a-z-]+)`, "text-${1}"),
		rewrite.NewPattern(`bg-bg-([a-z-]+)`, "bg-${1}"),
	)
	return rewrite.Ruleset{Name: "fix-duplicates", Rules: rules}
}

// Normalize returns text with duplicated token prefixes collapsed.
func Normalize(text string) string {
	out, _ := Ruleset().Apply(text)
	return out
}
