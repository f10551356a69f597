// Package cli implements the command-line surface.
package cli

import (
	"context"

	"github.com/example/kwonka/internal/ctxutil"
)

// NewContext returns the base context for CLI-driven operations. Operator
// actions are audited under the "cli" actor identity.
func NewContext() context.Context {
	return ctxutil.WithActor(context.Background(), "cli")
}
