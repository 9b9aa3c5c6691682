package classify

import (
	"fmt"
	"strings"

	"github.com/feedscout/feedscout/app/finding"
)

// Classifier assigns a relevance tier via an ordered short-circuit scan:
// high-tier keywords first, then high structural signals, then the medium
// tier, then medium signals. Earlier entries always win regardless of how
// many lower-tier terms also match. When multiple terms of one tier match,
// the first one in the rule table (not the first in the text) is reported
// as the reason.
type Classifier struct {
	rules []RelevanceRule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRelevanceRules}
}

// NewClassifierWithRules builds a classifier over a custom rule table,
// keeping table order.
func NewClassifierWithRules(rules []RelevanceRule) *Classifier {
	return &Classifier{rules: rules}
}

func (c *Classifier) Run(text string, signals []Signal) (finding.Relevance, string) {
	haystack := strings.ToLower(text)

	if strings.TrimSpace(haystack) == "" && len(signals) == 0 {
		return finding.RelevanceLow, "no content"
	}

	if tier, reason, ok := c.scanTier(haystack, finding.RelevanceHigh); ok {
		return tier, reason
	}
	if tier, reason, ok := matchSignal(signals, finding.RelevanceHigh); ok {
		return tier, reason
	}
	if tier, reason, ok := c.scanTier(haystack, finding.RelevanceMedium); ok {
		return tier, reason
	}
	if tier, reason, ok := matchSignal(signals, finding.RelevanceMedium); ok {
		return tier, reason
	}

	return finding.RelevanceLow, "no keyword match"
}

func (c *Classifier) scanTier(haystack string, tier finding.Relevance) (finding.Relevance, string, bool) {
	for _, rule := range c.rules {
		if rule.Tier != tier {
			continue
		}
		if strings.Contains(haystack, rule.Term) {
			return tier, fmt.Sprintf("matched '%s'", rule.Term), true
		}
	}
	return "", "", false
}

func matchSignal(signals []Signal, tier finding.Relevance) (finding.Relevance, string, bool) {
	for _, s := range signals {
		if s.Tier == tier {
			return tier, s.Reason, true
		}
	}
	return "", "", false
}
