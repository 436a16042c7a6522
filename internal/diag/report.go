package diag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ymatsuda/research-diagtool/internal/model"
	"github.com/ymatsuda/research-diagtool/internal/platform/runid"
)

const (
	markerOK   = "✅ 正常"
	markerFail = "❌ 異常"
)

// staticAdvice is the remediation block appended to every report. It does
// not vary with results.
var staticAdvice = []string{
	"",
	"## 🚨 推奨アクション",
	"",
	"### 異常が検出された場合:",
	"1. Railway ダッシュボードでログを確認",
	"2. 環境変数の設定を確認",
	"3. API制限の状況を確認",
	"4. このレポートを元にバグレポートを作成",
	"",
	"### 正常な場合:",
	"1. 具体的なバグの再現手順を詳細に記録",
	"2. ブラウザのDeveloper Toolsでエラーを確認",
	"3. 特定の操作でのみ発生する問題かを調査",
	"",
	"**レポート生成ツール**: `diagtool --full-report`",
}

// GenerateDebugReport runs the endpoint probe, the flow simulation, and
// the dependency check in sequence and renders the combined outcome as a
// text report. Each check is a fresh round trip; a prior failure never
// skips the next step.
func (t *Tool) GenerateDebugReport(ctx context.Context) model.DebugReport {
	t.printf("📋 総合デバッグレポート生成中...")

	basic := t.ProbeEndpoints(ctx)
	flow := t.SimulateResearchFlow(ctx, "")
	deps := t.CheckAPIDependencies(ctx)

	reportID := runid.FromContext(ctx)
	if reportID == "" {
		reportID = runid.New()
	}
	now := time.Now()

	lines := []string{
		"# 🔍 Market Research System - デバッグレポート",
		fmt.Sprintf("**レポートID**: %s", reportID),
		fmt.Sprintf("**生成日時**: %s", now.Format("2006年01月02日 15:04:05")),
		fmt.Sprintf("**対象環境**: %s", t.baseURL),
		"",
		"## 📊 基本エンドポイントテスト",
	}

	for _, target := range probeTargets {
		result := basic[target.name]
		marker := markerFail
		if result.Success {
			marker = markerOK
		}
		lines = append(lines, fmt.Sprintf("- **%s**: %s", target.name, marker))
		if !result.Success {
			lines = append(lines, fmt.Sprintf("  - エラー: %s", endpointErrorDetail(result)))
		}
	}

	lines = append(lines, "", "## 🧪 調査フローテスト")
	if flow.Err == "" {
		existence := "不明"
		if flow.ResearchEndpointExists {
			existence = "存在"
		}
		lines = append(lines,
			"- ✅ 調査フロー: 基本構造は正常",
			fmt.Sprintf("  - プロンプト数: %d", flow.PromptsCount),
			fmt.Sprintf("  - 調査エンドポイント: %s", existence),
		)
	} else {
		lines = append(lines,
			"- ❌ 調査フロー: エラー発生",
			fmt.Sprintf("  - エラー: %s", flow.Err),
		)
	}

	lines = append(lines, "", "## 🔗 外部API依存関係")
	for _, service := range dependencyNames {
		result := deps[service]
		marker := markerFail
		if result.Status == model.StatusUp {
			marker = markerOK
		}
		lines = append(lines, fmt.Sprintf("- **%s**: %s", strings.ToUpper(service), marker))
		if result.Status != model.StatusUp {
			detail := result.Err
			if detail == "" {
				detail = "Unknown"
			}
			lines = append(lines, fmt.Sprintf("  - エラー: %s", detail))
		}
	}

	lines = append(lines, staticAdvice...)

	return model.DebugReport{
		ReportID:    reportID,
		GeneratedAt: now,
		Lines:       lines,
	}
}

func endpointErrorDetail(result model.EndpointResult) string {
	switch {
	case result.Err != "":
		return result.Err
	case result.HTMLTitle != "":
		return fmt.Sprintf("HTTP %d (%s)", result.StatusCode, result.HTMLTitle)
	case result.StatusCode != 0:
		return fmt.Sprintf("HTTP %d", result.StatusCode)
	default:
		return "Unknown"
	}
}
