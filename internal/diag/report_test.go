package diag

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymatsuda/research-diagtool/internal/platform/runid"
)

func TestGenerateDebugReport_AllHealthy(t *testing.T) {
	ts := httptest.NewServer(healthyMux())
	defer ts.Close()

	tool := newTestTool(ts.URL, ts.URL)
	report := tool.GenerateDebugReport(context.Background())
	text := report.Render()

	assert.Equal(t, 5, strings.Count(text, "✅ 正常"),
		"three endpoints and two dependencies should all pass")
	assert.NotContains(t, text, "❌")
	assert.Contains(t, text, "- ✅ 調査フロー: 基本構造は正常")
	assert.Contains(t, text, "**対象環境**: "+ts.URL)
	assert.Contains(t, text, "**NOTION**")
	assert.Contains(t, text, "**GEMINI**")
	assert.Contains(t, text, "## 🚨 推奨アクション")
	assert.NotEmpty(t, report.ReportID)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestGenerateDebugReport_UnhealthyTarget(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	tool := newTestTool(ts.URL, ts.URL+"/missing-status-page")
	report := tool.GenerateDebugReport(context.Background())
	text := report.Render()

	assert.Contains(t, text, "❌ 異常")
	assert.Contains(t, text, "- ❌ 調査フロー: エラー発生")
	assert.Contains(t, text, "プロンプト取得失敗: 502")
	// The advice block is static and appears regardless of outcome.
	assert.Contains(t, text, "## 🚨 推奨アクション")
}

func TestGenerateDebugReport_TransportFailureEverywhere(t *testing.T) {
	ts := httptest.NewServer(healthyMux())
	ts.Close()

	tool := newTestTool(ts.URL, ts.URL)
	text := tool.GenerateDebugReport(context.Background()).Render()

	// A dead target still yields a complete report: every section renders,
	// each with its failure detail.
	assert.Contains(t, text, "## 📊 基本エンドポイントテスト")
	assert.Contains(t, text, "## 🧪 調査フローテスト")
	assert.Contains(t, text, "## 🔗 外部API依存関係")
	assert.NotContains(t, text, "✅ 正常")
	assert.GreaterOrEqual(t, strings.Count(text, "  - エラー: "), 5)
}

func TestGenerateDebugReport_UsesRunIDFromContext(t *testing.T) {
	ts := httptest.NewServer(healthyMux())
	defer ts.Close()

	tool := newTestTool(ts.URL, ts.URL)
	id := runid.New()
	ctx := runid.NewContext(context.Background(), id)

	report := tool.GenerateDebugReport(ctx)

	require.Equal(t, id, report.ReportID)
	assert.Contains(t, report.Render(), "**レポートID**: "+id)
}
