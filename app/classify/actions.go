package classify

import (
	"fmt"
	"strings"

	"github.com/feedscout/feedscout/app/finding"
)

// ActionPlanner suggests follow-ups for high-relevance findings only.
// Anything below high gets an empty list: action items are a triage
// signal and must not be diluted by low-signal items.
type ActionPlanner struct {
	rules []ActionRule
}

func NewActionPlanner() *ActionPlanner {
	return &ActionPlanner{rules: defaultActionRules}
}

// Run returns the suggested actions, always in the same order for the
// same inputs: a generic review item first, then the category follow-up,
// then trigger-term rules in table order.
func (p *ActionPlanner) Run(relevance finding.Relevance, category finding.Category, title, text string) []string {
	if relevance != finding.RelevanceHigh {
		return []string{}
	}

	actions := []string{fmt.Sprintf("Review: %s", title)}

	if follow, ok := categoryActions[category]; ok {
		actions = append(actions, follow)
	}

	haystack := strings.ToLower(text)
	for _, rule := range p.rules {
		if strings.Contains(haystack, rule.Term) {
			actions = append(actions, rule.Actions...)
		}
	}

	return actions
}
