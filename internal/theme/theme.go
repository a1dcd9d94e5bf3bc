// Package theme migrates component class names from the blue primary palette
// to the beige/gold premium palette.
//
// Replacements run strictly in table order. Several entries rely on that:
// opacity-qualified tokens must be rewritten before their bare prefix, and
// some later entries rewrite strings an earlier entry produced. Do not sort
// or deduplicate the table.
package theme

import "github.com/JonMunkholm/obratools/internal/rewrite"

var replacements = [][2]string{
	// Primary colors
	{"text-primary/60", "text-secondary"},
	{"text-primary/40", "text-secondary"},
	{"text-primary/20", "text-muted"},
	{"text-primary", "text-text-primary"},
	{"bg-primary-soft", "bg-accent-gold-soft"},
	{"bg-primary/20", "bg-accent-gold-soft"},
	{"bg-primary/10", "bg-accent-gold-soft"},
	{"border-primary/60", "border-accent-gold/60"},
	{"border-primary/50", "border-accent-gold/50"},
	{"border-primary/40", "border-accent-gold/40"},
	{"border-primary/30", "border-accent-gold/30"},
	{"border-primary/20", "border-accent-gold/20"},
	{"border-primary", "border-accent-gold"},
	{"hover:text-primary", "hover:text-accent-gold"},
	{"text-primary", "text-accent-gold"},
	{"bg-primary-dark", "bg-accent-gold"},
	{"hover:bg-primary-dark", "hover:bg-accent-gold"},
	{"hover:bg-primary", "hover:bg-accent-gold"},
	{"focus:ring-primary-soft", "focus:ring-accent-gold-soft"},
	{"focus:ring-primary", "focus:ring-accent-gold"},
	{"focus:border-primary", "focus:border-accent-gold"},
	{"bg-primary text-white", "bg-accent-gold text-white"},
	{"bg-primary", "bg-accent-gold"},

	// Backgrounds
	{"bg-surface", "bg-bg-surface"},

	// Borders
	{"border-border", "border-border-card"},

	// Text
	{"text-text-strong", "text-text-primary"},
	{"text-text-muted", "text-text-secondary"},
	{"text-muted", "text-text-muted"},

	// Easing
	{"ease-premium", "ease-out"},
}

// Ruleset returns the ordered migration rules.
func Ruleset() rewrite.Ruleset {
	return rewrite.Ruleset{Name: "update-theme", Rules: rewrite.Literals(replacements)}
}

// Migrate returns text with the theme migration applied.
func Migrate(text string) string {
	out, _ := Ruleset().Apply(text)
	return out
}
