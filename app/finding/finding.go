package finding

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

const (
	// TitleLimit bounds Finding.Title length in runes.
	TitleLimit = 80
	// SummaryLimit bounds Finding.Summary length in runes.
	SummaryLimit = 300
	// KeywordLimit bounds the number of entries in Finding.Keywords.
	KeywordLimit = 10
)

// ID derives a stable identifier from the item's identifying string
// (canonical URL, optionally combined with a timestamp for sources that
// reuse URLs). The same key always yields the same id, which downstream
// aggregators use as the dedup key. 128 bits of the hash are kept.
func ID(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:16])
}

// Truncate cuts s to at most limit runes. Truncated values carry a
// trailing ellipsis so callers can tell content was cut; the ellipsis
// counts against the limit.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := strings.TrimRightFunc(string(runes[:limit-3]), unicode.IsSpace)
	return cut + "..."
}
