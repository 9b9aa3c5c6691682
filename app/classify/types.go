package classify

import (
	"github.com/feedscout/feedscout/app/finding"
)

// Classification rule types. Rules are plain data so each table can be
// swapped or extended per source without touching the matching logic.

// RelevanceRule assigns a relevance tier when its term occurs in the
// scanned text. Rules are evaluated in table order within each tier;
// the first hit wins and its term becomes the reported reason.
type RelevanceRule struct {
	Tier finding.Relevance
	Term string
}

// Signal is a structural promotion that applies even without a keyword
// hit, e.g. a release flagged latest by the source, or a commit touching
// a known-important file path.
type Signal struct {
	Tier   finding.Relevance
	Reason string
}

// CategoryRule maps any of its terms to a category. The table is ordered
// by priority; the first rule with a matching term wins.
type CategoryRule struct {
	Category finding.Category
	Terms    []string
}

// ActionRule emits extra action items when its trigger term occurs in
// the scanned text.
type ActionRule struct {
	Term    string
	Actions []string
}
