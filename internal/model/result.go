package model

import (
	"strings"
	"time"
)

// EndpointResult holds the outcome of probing a single endpoint.
type EndpointResult struct {
	Name          string            `json:"name"`
	StatusCode    int               `json:"status_code,omitempty"`
	Success       bool              `json:"success"`
	ResponseTime  float64           `json:"response_time,omitempty"` // seconds
	ContentLength int               `json:"content_length,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	JSONData      any               `json:"json_data,omitempty"`
	TextData      string            `json:"text_data,omitempty"`
	HTMLTitle     string            `json:"html_title,omitempty"`
	ErrorText     string            `json:"error_text,omitempty"`
	Err           string            `json:"error,omitempty"`
}

// FlowCheckResult is the outcome of one research-flow simulation.
// Err is set instead of the other fields when any step fails.
type FlowCheckResult struct {
	PromptsCount           int    `json:"prompts_count"`
	ResearchEndpointExists bool   `json:"research_endpoint_exists"`
	TestRequestValid       bool   `json:"test_request_valid"`
	BusinessName           string `json:"business_name"`
	Err                    string `json:"error,omitempty"`
}

// Status represents the inferred health of an upstream dependency.
type Status string

const (
	StatusUp      Status = "up"
	StatusDown    Status = "down"
	StatusUnknown Status = "unknown"
	StatusError   Status = "error"
)

// DependencyStatus is the outcome of checking a single upstream service.
type DependencyStatus struct {
	Status       Status  `json:"status"`
	ResponseTime float64 `json:"response_time,omitempty"` // seconds
	TestResult   *bool   `json:"test_result,omitempty"`
	Err          string  `json:"error,omitempty"`
}

// PatternMatch records which keywords of one error category were found.
type PatternMatch struct {
	MatchedKeywords []string `json:"matched_keywords"`
	Count           int      `json:"count"`
}

// LogAnalysis is the outcome of classifying a block of log text.
// Categories with zero hits are omitted from Patterns.
type LogAnalysis struct {
	TotalPatterns int                     `json:"total_patterns"`
	Patterns      map[string]PatternMatch `json:"patterns,omitempty"`
	LogLength     int                     `json:"log_length,omitempty"`
	AnalysisTime  time.Time               `json:"analysis_time,omitzero"`
	Err           string                  `json:"error,omitempty"`
}

// DebugReport is the assembled diagnostic report.
type DebugReport struct {
	ReportID    string
	GeneratedAt time.Time
	Lines       []string
}

// Render joins the report lines into the printable document.
func (r DebugReport) Render() string {
	return strings.Join(r.Lines, "\n")
}
