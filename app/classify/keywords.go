package classify

import (
	"strings"

	"github.com/feedscout/feedscout/app/finding"
)

// KeywordExtractor emits the vocabulary terms present in the text, in
// vocabulary order (not text order), deduplicated case-insensitively and
// capped at finding.KeywordLimit. Source-structural hints (feed category
// tags, detected file languages) are appended after vocabulary hits,
// subject to the same dedup and cap.
type KeywordExtractor struct {
	vocabulary []string
	limit      int
}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{
		vocabulary: defaultKeywordVocabulary,
		limit:      finding.KeywordLimit,
	}
}

func (e *KeywordExtractor) Run(text string, hints []string) []string {
	haystack := strings.ToLower(text)

	keywords := make([]string, 0, e.limit)
	seen := make(map[string]bool)

	add := func(term string) bool {
		key := strings.ToLower(term)
		if seen[key] || len(keywords) >= e.limit {
			return len(keywords) < e.limit
		}
		seen[key] = true
		keywords = append(keywords, term)
		return true
	}

	for _, term := range e.vocabulary {
		if strings.Contains(haystack, term) {
			if !add(term) {
				return keywords
			}
		}
	}

	for _, hint := range hints {
		hint = strings.TrimSpace(hint)
		if hint == "" {
			continue
		}
		if !add(hint) {
			return keywords
		}
	}

	return keywords
}
