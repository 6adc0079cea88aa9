package service

import (
	"regexp"
	"strings"

	"findash/internal/models"
)

// PatternRule maps a compiled keyword pattern to a category label.
type PatternRule struct {
	Pattern  *regexp.Regexp
	Category string
}

// DefaultPatternRules returns the built-in rule table. Order matters:
// the matcher returns the category of the first matching rule, so
// overlapping keywords resolve to whichever rule is listed first.
func DefaultPatternRules() []PatternRule {
	return []PatternRule{
		{regexp.MustCompile(`grocery|supermarket|walmart|target|food|produce`), "Groceries"},
		{regexp.MustCompile(`restaurant|cafe|coffee|starbucks|mcdonald|pizza|burger`), "Dining Out"},
		{regexp.MustCompile(`gas|fuel|shell|exxon|chevron`), "Transportation"},
		{regexp.MustCompile(`uber|lyft|taxi|bus|metro|train`), "Transportation"},
		{regexp.MustCompile(`netflix|spotify|hulu|disney|subscription|prime`), "Entertainment"},
		{regexp.MustCompile(`rent|mortgage|property`), "Housing"},
		{regexp.MustCompile(`electric|water|gas bill|utility`), "Utilities"},
		{regexp.MustCompile(`pharmacy|doctor|hospital|medical|health`), "Healthcare"},
		{regexp.MustCompile(`amazon|ebay|shopping|store|mall`), "Shopping"},
		{regexp.MustCompile(`gym|fitness|sport`), "Fitness"},
		{regexp.MustCompile(`insurance`), "Insurance"},
		{regexp.MustCompile(`phone|internet|mobile|wireless`), "Bills"},
	}
}

// PatternMatcher categorizes expense titles with a fixed,
// priority-ordered rule table. It is the guaranteed-available last
// tier of the suggestion cascade: pure, deterministic, and total.
type PatternMatcher struct {
	rules []PatternRule
}

func NewPatternMatcher(rules []PatternRule) *PatternMatcher {
	return &PatternMatcher{rules: rules}
}

// Categorize returns the category of the first rule matching the
// lower-cased title, or "Uncategorized" when no rule matches.
func (m *PatternMatcher) Categorize(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range m.rules {
		if rule.Pattern.MatchString(lower) {
			return rule.Category
		}
	}
	return models.CategoryUncategorized
}
