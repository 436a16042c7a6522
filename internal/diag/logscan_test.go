package diag

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanTool() *Tool {
	return NewTool("https://example.com", Options{Progress: io.Discard})
}

func TestAnalyzeErrorPatterns_RateLimit(t *testing.T) {
	tool := newScanTool()

	result := tool.AnalyzeErrorPatterns("2026-08-01 request rejected: rate limit exceeded (429)")

	require.Empty(t, result.Err)
	require.Contains(t, result.Patterns, "rate_limit")
	match := result.Patterns["rate_limit"]
	assert.Contains(t, match.MatchedKeywords, "rate limit")
	assert.Contains(t, match.MatchedKeywords, "429")
	assert.Equal(t, len(match.MatchedKeywords), match.Count)
	assert.False(t, result.AnalysisTime.IsZero())
}

func TestAnalyzeErrorPatterns_CaseInsensitive(t *testing.T) {
	tool := newScanTool()

	result := tool.AnalyzeErrorPatterns("FATAL: OUT OF MEMORY in worker")

	require.Contains(t, result.Patterns, "memory_error")
	assert.Contains(t, result.Patterns["memory_error"].MatchedKeywords, "out of memory")
}

func TestAnalyzeErrorPatterns_MultipleCategories(t *testing.T) {
	tool := newScanTool()

	result := tool.AnalyzeErrorPatterns("ETIMEDOUT calling notion api; gemini quota hit")

	assert.Equal(t, 3, result.TotalPatterns)
	assert.Contains(t, result.Patterns, "api_timeout")
	assert.Contains(t, result.Patterns, "notion_error")
	assert.Contains(t, result.Patterns, "gemini_error")
}

func TestAnalyzeErrorPatterns_NoMatches(t *testing.T) {
	tool := newScanTool()

	result := tool.AnalyzeErrorPatterns("all quiet on the western front")

	assert.Zero(t, result.TotalPatterns)
	assert.Empty(t, result.Patterns)
	assert.Empty(t, result.Err)
}

func TestAnalyzeErrorPatterns_EmptyInput(t *testing.T) {
	tool := newScanTool()

	result := tool.AnalyzeErrorPatterns("")

	assert.Equal(t, "ログテキストが必要です", result.Err)
	assert.Zero(t, result.TotalPatterns)
	assert.Empty(t, result.Patterns)
	assert.True(t, result.AnalysisTime.IsZero(), "no analysis ran")
}

func TestAnalyzeErrorPatterns_LogLengthCountsRunes(t *testing.T) {
	tool := newScanTool()

	result := tool.AnalyzeErrorPatterns("タイムアウト: timeout")

	assert.Equal(t, 15, result.LogLength)
}
