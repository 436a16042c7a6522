package diag

import (
	"context"
	"net/http"
	"time"

	"github.com/ymatsuda/research-diagtool/internal/model"
	"github.com/ymatsuda/research-diagtool/internal/platform/runid"
)

type probeTarget struct {
	name string
	path string
}

// probeTargets is the fixed set of endpoints every probe run covers.
// The slice also fixes the display order in the report.
var probeTargets = []probeTarget{
	{name: "health", path: healthPath},
	{name: "prompts", path: promptsPath},
	{name: "test", path: testPath},
}

// ProbeEndpoints issues one GET per known endpoint and records
// status, latency, size, headers, and body. No retries.
func (t *Tool) ProbeEndpoints(ctx context.Context) map[string]model.EndpointResult {
	t.printf("🔍 基本エンドポイントテスト開始...")

	results := make(map[string]model.EndpointResult, len(probeTargets))
	for _, target := range probeTargets {
		results[target.name] = t.probeOne(ctx, target)
	}
	return results
}

func (t *Tool) probeOne(ctx context.Context, target probeTarget) model.EndpointResult {
	url := t.baseURL + target.path
	t.printf("  テスト中: %s (%s)", target.name, url)

	logger := t.logger.With("endpoint", target.name, "url", url, "run_id", runid.FromContext(ctx))

	start := time.Now()
	resp, err := t.get(ctx, t.client, url)
	if err != nil {
		t.printf("    💥 %s: 例外発生 - %v", target.name, err)
		logger.Error("probe failed", "error", err)
		return model.EndpointResult{Name: target.name, Err: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := readBody(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		t.printf("    💥 %s: 例外発生 - %v", target.name, err)
		logger.Error("probe read failed", "error", err)
		return model.EndpointResult{Name: target.name, Err: err.Error()}
	}

	result := model.EndpointResult{
		Name:          target.name,
		StatusCode:    resp.StatusCode,
		Success:       resp.StatusCode == http.StatusOK,
		ResponseTime:  elapsed.Seconds(),
		ContentLength: len(body),
		Headers:       flattenHeaders(resp.Header),
	}

	if result.Success {
		if data, ok := decodeJSON(body); ok {
			result.JSONData = data
			t.printf("    ✅ %s: 正常 (%d, %.2fs)", target.name, resp.StatusCode, elapsed.Seconds())
		} else {
			result.TextData = truncateText(body, maxTextCapture)
			result.HTMLTitle = htmlTitle(body)
			t.printf("    ✅ %s: 正常（テキスト応答）", target.name)
		}
	} else {
		result.ErrorText = string(body)
		result.HTMLTitle = htmlTitle(body)
		t.printf("    ❌ %s: エラー (%d)", target.name, resp.StatusCode)
	}

	logger.Info("probe complete",
		"status", resp.StatusCode,
		"success", result.Success,
		"duration", elapsed.String(),
		"content_length", result.ContentLength,
	)
	return result
}
