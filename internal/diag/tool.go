// Package diag implements the diagnostic checks for a deployed
// market-research service: endpoint probing, research-flow simulation,
// upstream dependency checks, log triage, and report assembly.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// Relative paths the target service is expected to expose.
const (
	healthPath  = "/health"
	promptsPath = "/api/research/prompts"
	testPath    = "/api/research/test"
	conductPath = "/api/research/conduct"
)

const (
	defaultTimeout       = 30 * time.Second
	statusPageTimeout    = 10 * time.Second
	defaultStatusPageURL = "https://status.notion.so/api/v2/status.json"
	userAgent            = "research-diagtool/1.0"
)

// Options configures a Tool. Zero values fall back to defaults.
type Options struct {
	// Timeout applies to calls against the target service.
	Timeout time.Duration
	// StatusPageURL is the third-party status endpoint consulted by the
	// dependency checker.
	StatusPageURL string
	Logger        *slog.Logger
	// Progress receives the console progress lines. Defaults to stdout.
	Progress io.Writer
}

// Tool runs diagnostic checks against one deployed service. Each check is
// independently callable and side-effect free beyond network I/O and
// progress output, so the menu can invoke them individually or the report
// assembler can compose them.
type Tool struct {
	baseURL       string
	statusPageURL string
	client        *http.Client
	statusClient  *http.Client
	logger        *slog.Logger
	progress      io.Writer
}

// NewTool returns a Tool targeting the service at baseURL.
func NewTool(baseURL string, opts Options) *Tool {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	statusPageURL := opts.StatusPageURL
	if statusPageURL == "" {
		statusPageURL = defaultStatusPageURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	progress := opts.Progress
	if progress == nil {
		progress = os.Stdout
	}

	return &Tool{
		baseURL:       strings.TrimRight(baseURL, "/"),
		statusPageURL: statusPageURL,
		client:        newHTTPClient(timeout),
		statusClient:  newHTTPClient(statusPageTimeout),
		logger:        logger,
		progress:      progress,
	}
}

// BaseURL returns the target service root the tool was built for.
func (t *Tool) BaseURL() string {
	return t.baseURL
}

func (t *Tool) printf(format string, args ...any) {
	fmt.Fprintf(t.progress, format+"\n", args...)
}
