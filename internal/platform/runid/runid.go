package runid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New generates a fresh run ID. One ID is minted per executed diagnostic
// action so its log lines can be correlated.
func New() string {
	return uuid.New().String()
}

// NewContext returns a context that carries the given run ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the run ID stored in ctx, or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
