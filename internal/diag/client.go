package diag

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ymatsuda/research-diagtool/internal/platform/errs"
)

// newHTTPClient returns a pooled client with the given total timeout.
// Connections are reused across sequential checks within one run.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxConnsPerHost:     10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func (t *Tool) get(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	return t.do(ctx, client, http.MethodGet, rawURL)
}

func (t *Tool) head(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	return t.do(ctx, client, http.MethodHead, rawURL)
}

func (t *Tool) do(ctx context.Context, client *http.Client, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Transport,
			Message: "build request",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return resp, nil
}

// classifyTransportError wraps a client.Do failure, separating timeouts
// from other transport faults (connection refused, reset, DNS failure).
func classifyTransportError(err error) error {
	kind := errs.Transport
	var ne net.Error
	if (errors.As(err, &ne) && ne.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		kind = errs.Timeout
	}
	return &errs.AppError{
		Kind:    kind,
		Message: "request failed",
		Cause:   err,
	}
}
