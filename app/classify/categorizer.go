package classify

import (
	"strings"

	"github.com/feedscout/feedscout/app/finding"
)

// Categorizer maps an item to exactly one category by first-match
// priority: the table is scanned in order and the first rule with any
// matching term wins, falling through to general. The same table is
// shared by every source adapter so identical content always lands in
// the same category regardless of where it was scraped.
type Categorizer struct {
	rules []CategoryRule
}

func NewCategorizer() *Categorizer {
	return &Categorizer{rules: defaultCategoryRules}
}

func NewCategorizerWithRules(rules []CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

func (c *Categorizer) Run(text string) finding.Category {
	haystack := strings.ToLower(text)

	for _, rule := range c.rules {
		for _, term := range rule.Terms {
			if strings.Contains(haystack, term) {
				return rule.Category
			}
		}
	}

	return finding.CategoryGeneral
}
