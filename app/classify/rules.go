package classify

import (
	"github.com/feedscout/feedscout/app/finding"
)

// Default rule tables. All matching is lower-cased substring, so terms
// are listed lower-case. Table order is significant: earlier entries win.

var defaultRelevanceRules = []RelevanceRule{
	// High tier: domain-critical terms
	{finding.RelevanceHigh, "claude code"},
	{finding.RelevanceHigh, "claude agent sdk"},
	{finding.RelevanceHigh, "agent sdk"},
	{finding.RelevanceHigh, "model context protocol"},
	{finding.RelevanceHigh, "mcp server"},
	{finding.RelevanceHigh, "tool use"},
	{finding.RelevanceHigh, "tool_use"},
	{finding.RelevanceHigh, "agent skills"},
	{finding.RelevanceHigh, "subagent"},
	{finding.RelevanceHigh, "computer use"},
	{finding.RelevanceHigh, "extended thinking"},
	{finding.RelevanceHigh, "prompt caching"},
	{finding.RelevanceHigh, "breaking change"},
	{finding.RelevanceHigh, "deprecat"},
	{finding.RelevanceHigh, "system prompt"},
	{finding.RelevanceHigh, "slash command"},
	// Medium tier: general-but-relevant terminology
	{finding.RelevanceMedium, "claude"},
	{finding.RelevanceMedium, "anthropic"},
	{finding.RelevanceMedium, "prompt engineering"},
	{finding.RelevanceMedium, "context window"},
	{finding.RelevanceMedium, "fine-tun"},
	{finding.RelevanceMedium, "llm"},
	{finding.RelevanceMedium, "coding assistant"},
	{finding.RelevanceMedium, "ai agent"},
	{finding.RelevanceMedium, "agentic"},
	{finding.RelevanceMedium, "rag"},
	{finding.RelevanceMedium, "embedding"},
	{finding.RelevanceMedium, "api update"},
	{finding.RelevanceMedium, "new model"},
	{finding.RelevanceMedium, "sdk"},
	{finding.RelevanceMedium, "workflow automation"},
}

var defaultCategoryRules = []CategoryRule{
	{finding.CategoryTools, []string{"tool use", "tool_use", "mcp", "model context protocol", "function calling", "computer use", "bash tool", "code execution"}},
	{finding.CategoryPrompting, []string{"prompt", "few-shot", "chain of thought", "system message", "instruction"}},
	{finding.CategoryArchitecture, []string{"architecture", "orchestrat", "pipeline", "multi-agent", "subagent", "workflow", "context window", "memory management"}},
	{finding.CategorySkills, []string{"skill", "slash command", "plugin", "extension", "marketplace"}},
	{finding.CategorySecurity, []string{"security", "vulnerability", "cve", "injection", "sandbox", "permission", "exploit"}},
}

var defaultKeywordVocabulary = []string{
	"claude code",
	"claude",
	"anthropic",
	"mcp",
	"agent",
	"skill",
	"prompt",
	"tool use",
	"sdk",
	"api",
	"release",
	"deprecation",
	"security",
	"workflow",
	"automation",
	"llm",
	"fine-tuning",
	"rag",
	"embedding",
	"benchmark",
}

var defaultActionRules = []ActionRule{
	{"deprecat", []string{"Urgent: review deprecation notice and plan migration"}},
	{"breaking change", []string{"Urgent: audit current integrations for breakage"}},
	{"tool use", []string{"Compare tool definitions against current setup"}},
	{"security", []string{"Run a security review of affected components"}},
	{"new model", []string{"Evaluate the new model against current defaults"}},
}

// categoryActions adds one follow-up per category for high-relevance items.
var categoryActions = map[finding.Category]string{
	finding.CategoryPrompting:    "Test updated prompting techniques against existing prompts",
	finding.CategorySkills:       "Check whether existing skills need updating",
	finding.CategoryArchitecture: "Assess impact on current agent architecture",
	finding.CategoryTools:        "Try the tool changes in a scratch environment",
	finding.CategorySecurity:     "Verify exposure and apply mitigations",
}
