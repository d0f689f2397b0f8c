package cmd

import (
	"context"
	"fmt"

	"github.com/agueijo/pathkit/internal/pathutil"
)

func (r *Router) handleSplit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("split: expected exactly one path")
	}

	r.Formatter.PrintComponents(pathutil.Split(args[0]))
	return nil
}
