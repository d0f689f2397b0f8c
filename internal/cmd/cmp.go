package cmd

import (
	"context"
	"fmt"

	"github.com/agueijo/pathkit/internal/pathutil"
)

func (r *Router) handleCmp(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("cmp: expected exactly two paths")
	}

	result, err := pathutil.Compare(args[0], args[1])
	if err != nil {
		return fmt.Errorf("cmp: %w", err)
	}
	r.Formatter.PrintComparison(args[0], args[1], result)
	return nil
}
