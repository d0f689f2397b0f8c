package cmd

import (
	"context"
	"fmt"

	"github.com/agueijo/pathkit/internal/pathutil"
)

func (r *Router) handleRel(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("rel: expected a target path and a start path")
	}

	result, err := pathutil.RelativePath(args[0], args[1])
	if err != nil {
		return fmt.Errorf("rel: %w", err)
	}
	r.Formatter.PrintPath(result)
	return nil
}
