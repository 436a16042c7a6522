package diag

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const (
	// Bound on captured response bodies to prevent memory exhaustion from
	// extremely large or infinite responses.
	maxResponseBody = 10 << 20

	// Runes of raw text kept when a body does not parse as JSON.
	maxTextCapture = 500
)

func readBody(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxResponseBody))
}

// decodeJSON reports whether the body is valid JSON and returns its
// decoded form.
func decodeJSON(b []byte) (any, bool) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return v, true
}

func truncateText(b []byte, limit int) string {
	runes := []rune(string(b))
	if len(runes) <= limit {
		return string(b)
	}
	return string(runes[:limit])
}

// htmlTitle extracts the <title> text when the body is an HTML document,
// or returns an empty string. Hosting platforms answer with HTML error
// pages whose title is usually the only useful line in them.
func htmlTitle(b []byte) string {
	if !looksLikeHTML(b) {
		return ""
	}

	z := html.NewTokenizer(bytes.NewReader(b))
	var inTitle bool
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""

		case html.StartTagToken:
			tn, _ := z.TagName()
			if string(tn) == "title" {
				inTitle = true
			}

		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(z.Text()))
			}

		case html.EndTagToken:
			tn, _ := z.TagName()
			if string(tn) == "title" {
				return ""
			}
		}
	}
}

func looksLikeHTML(b []byte) bool {
	head := b
	if len(head) > 256 {
		head = head[:256]
	}
	s := strings.ToLower(strings.TrimSpace(string(head)))
	return strings.HasPrefix(s, "<!doctype html") || strings.HasPrefix(s, "<html")
}

// flattenHeaders keeps the first value per header, which is all the
// diagnostic output needs.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
