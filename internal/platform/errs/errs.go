package errs

import "fmt"

// Kind categorizes diagnostic errors. Non-success HTTP statuses and
// missing inputs are recorded on result records, not raised as errors, so
// only transport-level failures carry a Kind.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// Transport indicates the request never produced an HTTP response
	// (connection refused, reset, DNS failure).
	Transport
	// Timeout indicates the target took too long to respond.
	Timeout
)

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
