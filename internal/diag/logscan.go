package diag

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ymatsuda/research-diagtool/internal/model"
)

type patternRule struct {
	Name     string
	Keywords []string
}

// patternRules defines the fixed triage categories. Matching is plain
// case-insensitive substring search; no regex, no tokenization.
var patternRules = []patternRule{
	{Name: "api_timeout", Keywords: []string{"timeout", "ETIMEDOUT", "request timeout"}},
	{Name: "rate_limit", Keywords: []string{"rate limit", "429", "too many requests"}},
	{Name: "notion_error", Keywords: []string{"notion", "NOTION_", "notion api"}},
	{Name: "gemini_error", Keywords: []string{"gemini", "google", "generative-ai"}},
	{Name: "memory_error", Keywords: []string{"memory", "heap", "out of memory"}},
	{Name: "network_error", Keywords: []string{"ECONNRESET", "ENOTFOUND", "network"}},
	{Name: "json_parse_error", Keywords: []string{"JSON.parse", "unexpected token", "json"}},
	{Name: "typescript_error", Keywords: []string{"TypeScript", ".ts:", "compilation"}},
}

// AnalyzeErrorPatterns scans pasted log text for the known error
// signatures. Categories without a single hit are omitted. An empty input
// short-circuits with an error record; no scanning happens.
func (t *Tool) AnalyzeErrorPatterns(logText string) model.LogAnalysis {
	t.printf("📊 エラーパターン分析...")

	if logText == "" {
		t.printf("  ⚠️ ログテキストが提供されていません")
		return model.LogAnalysis{Err: "ログテキストが必要です"}
	}

	lower := strings.ToLower(logText)

	found := make(map[string]model.PatternMatch)
	for _, rule := range patternRules {
		var matches []string
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				matches = append(matches, keyword)
			}
		}
		if len(matches) > 0 {
			found[rule.Name] = model.PatternMatch{
				MatchedKeywords: matches,
				Count:           len(matches),
			}
		}
	}

	t.logger.Info("log analysis complete",
		"total_patterns", len(found),
		"log_length", utf8.RuneCountInString(logText),
	)

	return model.LogAnalysis{
		TotalPatterns: len(found),
		Patterns:      found,
		LogLength:     utf8.RuneCountInString(logText),
		AnalysisTime:  time.Now(),
	}
}
