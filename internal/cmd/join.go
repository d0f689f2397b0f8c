package cmd

import (
	"context"

	"github.com/agueijo/pathkit/internal/pathutil"
)

// join treats its arguments as a component sequence. A quoted empty argument
// is the root marker: join "" usr bin -> /usr/bin.
func (r *Router) handleJoin(ctx context.Context, args []string) error {
	r.Formatter.PrintPath(pathutil.Join(args))
	return nil
}
