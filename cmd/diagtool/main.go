// Command diagtool is an interactive operator tool that diagnoses a
// deployed market-research service: it probes its endpoints, simulates the
// research flow, checks upstream dependencies, triages pasted log text,
// and assembles a full debug report.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ymatsuda/research-diagtool/internal/diag"
	"github.com/ymatsuda/research-diagtool/internal/platform/config"
	"github.com/ymatsuda/research-diagtool/internal/platform/logger"
	"github.com/ymatsuda/research-diagtool/internal/platform/runid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	in := bufio.NewScanner(os.Stdin)
	baseURL := resolveBaseURL(os.Args[1:], in, os.Stdout, cfg.BaseURL)

	tool := diag.NewTool(baseURL, diag.Options{
		Timeout:       cfg.RequestTimeout,
		StatusPageURL: cfg.StatusPageURL,
		Logger:        log,
	})

	runMenu(in, os.Stdout, tool, log)
}

// resolveBaseURL picks the target URL: command-line argument first, then
// interactive input, then the configured default.
func resolveBaseURL(args []string, in *bufio.Scanner, out io.Writer, fallback string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		url := strings.TrimSpace(args[0])
		fmt.Fprintf(out, "🎯 指定されたURL: %s\n", url)
		return url
	}

	fmt.Fprint(out, "🔗 Railway本番環境のURL（省略時はデフォルト）: ")
	if in.Scan() {
		if url := strings.TrimSpace(in.Text()); url != "" {
			return url
		}
	}
	return fallback
}

var actionNames = map[string]string{
	"1": "基本エンドポイントテスト",
	"2": "調査フローシミュレーション",
	"3": "外部API依存関係チェック",
	"4": "総合デバッグレポート",
	"5": "エラーパターン分析",
}

var actionOrder = []string{"1", "2", "3", "4", "5"}

// runMenu drives the interactive loop. Invalid input reprompts; action
// failures are printed and the loop continues; only q (or EOF) exits.
func runMenu(in *bufio.Scanner, out io.Writer, tool *diag.Tool, log *slog.Logger) {
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "🐛 Market Research System - デバッグツール")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	fmt.Fprintln(out, "\n🛠️ 実行する診断を選択してください:")
	for _, key := range actionOrder {
		fmt.Fprintf(out, "  %s. %s\n", key, actionNames[key])
	}
	fmt.Fprintln(out, "  q. 終了")

	for {
		fmt.Fprint(out, "\n選択 (1-5, q): ")
		if !in.Scan() {
			return
		}
		choice := strings.TrimSpace(in.Text())

		if strings.EqualFold(choice, "q") {
			fmt.Fprintln(out, "👋 デバッグツールを終了します")
			return
		}

		name, ok := actionNames[choice]
		if !ok {
			fmt.Fprintln(out, "❌ 無効な選択です")
			continue
		}

		fmt.Fprintf(out, "\n🚀 %s を実行中...\n", name)
		fmt.Fprintln(out, strings.Repeat("-", 40))
		runAction(in, out, tool, log, choice)
		fmt.Fprintln(out, strings.Repeat("-", 40))

		fmt.Fprint(out, "Enterキーで続行...")
		if !in.Scan() {
			return
		}
	}
}

// runAction dispatches one menu choice. A panic inside a check is caught
// and printed so the menu loop survives it.
func runAction(in *bufio.Scanner, out io.Writer, tool *diag.Tool, log *slog.Logger, choice string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "❌ エラー: %v\n", r)
		}
	}()

	id := runid.New()
	ctx := runid.NewContext(context.Background(), id)
	log.Info("action start", "action", actionNames[choice], "run_id", id)

	switch choice {
	case "1":
		printJSON(out, tool.ProbeEndpoints(ctx))
	case "2":
		printJSON(out, tool.SimulateResearchFlow(ctx, ""))
	case "3":
		printJSON(out, tool.CheckAPIDependencies(ctx))
	case "4":
		fmt.Fprintln(out, tool.GenerateDebugReport(ctx).Render())
	case "5":
		printJSON(out, tool.AnalyzeErrorPatterns(readLogText(in, out)))
	}
}

// readLogText collects pasted log lines until a blank line.
func readLogText(in *bufio.Scanner, out io.Writer) string {
	fmt.Fprintln(out, "ログテキストを貼り付けてください（空行で終了）:")

	var lines []string
	for in.Scan() {
		line := in.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func printJSON(out io.Writer, v any) {
	fmt.Fprintln(out, "\n📋 結果:")
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "❌ エラー: %v\n", err)
		return
	}
	fmt.Fprintln(out, string(b))
}
