package diag

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ymatsuda/research-diagtool/internal/model"
	"github.com/ymatsuda/research-diagtool/internal/platform/runid"
)

// Display order for dependency sections; the two checks themselves are
// independent.
var dependencyNames = []string{"notion", "gemini"}

// CheckAPIDependencies infers the health of the two upstream services the
// target depends on: the Notion API via its public status page, and Gemini
// indirectly via the service's own test endpoint (no direct credentials
// are available from the outside).
func (t *Tool) CheckAPIDependencies(ctx context.Context) map[string]model.DependencyStatus {
	t.printf("🔗 外部API依存関係チェック...")

	return map[string]model.DependencyStatus{
		"notion": t.checkStatusPage(ctx),
		"gemini": t.checkGeminiIndirect(ctx),
	}
}

func (t *Tool) checkStatusPage(ctx context.Context) model.DependencyStatus {
	logger := t.logger.With("dependency", "notion", "run_id", runid.FromContext(ctx))

	start := time.Now()
	resp, err := t.get(ctx, t.statusClient, t.statusPageURL)
	if err != nil {
		t.printf("  ❌ Notion API: %v", err)
		logger.Error("status page check failed", "error", err)
		return model.DependencyStatus{Status: model.StatusError, Err: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	status := model.StatusDown
	if resp.StatusCode == http.StatusOK {
		status = model.StatusUp
	}
	t.printf("  ✅ Notion API: 疎通確認")
	logger.Info("status page check complete", "status", string(status))

	return model.DependencyStatus{
		Status:       status,
		ResponseTime: time.Since(start).Seconds(),
	}
}

func (t *Tool) checkGeminiIndirect(ctx context.Context) model.DependencyStatus {
	logger := t.logger.With("dependency", "gemini", "run_id", runid.FromContext(ctx))

	resp, err := t.get(ctx, t.client, t.baseURL+testPath)
	if err != nil {
		logger.Error("test endpoint check failed", "error", err)
		return model.DependencyStatus{Status: model.StatusError, Err: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("test endpoint returned non-200", "status", resp.StatusCode)
		return model.DependencyStatus{
			Status: model.StatusUnknown,
			Err:    "テストエンドポイント応答なし",
		}
	}

	body, err := readBody(resp.Body)
	if err != nil {
		return model.DependencyStatus{Status: model.StatusError, Err: err.Error()}
	}
	var testData struct {
		Gemini bool `json:"gemini"`
	}
	if err := json.Unmarshal(body, &testData); err != nil {
		return model.DependencyStatus{Status: model.StatusError, Err: err.Error()}
	}

	status := model.StatusDown
	if testData.Gemini {
		status = model.StatusUp
	}
	logger.Info("indirect check complete", "status", string(status))

	return model.DependencyStatus{
		Status:     status,
		TestResult: &testData.Gemini,
	}
}
