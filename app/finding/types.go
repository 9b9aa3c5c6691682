package finding

// Finding types shared by every source adapter

type Type string

const (
	TypeArticle Type = "article"
	TypeVideo   Type = "video"
	TypeCommit  Type = "commit"
	TypeRelease Type = "release"
)

type Relevance string

const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

type Category string

const (
	CategoryPrompting    Category = "prompting"
	CategorySkills       Category = "skills"
	CategoryArchitecture Category = "architecture"
	CategoryTools        Category = "tools"
	CategorySecurity     Category = "security"
	CategoryGeneral      Category = "general"
)

// Finding is the normalized output record for one discovered item.
// A Finding is assembled once at the end of a scrape pass and never
// mutated afterwards.
type Finding struct {
	ID          string         `json:"id"`
	Source      string         `json:"source"`
	Type        Type           `json:"type"`
	Date        string         `json:"date"` // item's own timestamp, ISO-8601
	URL         string         `json:"url"`
	Title       string         `json:"title"`
	Summary     string         `json:"summary"`
	Relevance   Relevance      `json:"relevance"`
	Category    Category       `json:"category"`
	Keywords    []string       `json:"keywords"`
	ActionItems []string       `json:"action_items"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
