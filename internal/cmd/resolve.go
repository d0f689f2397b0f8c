package cmd

import (
	"context"
	"fmt"
)

func (r *Router) handleResolve(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("resolve: missing operand")
	}

	for _, arg := range args {
		r.Formatter.PrintPath(r.ResolvePath(arg))
	}
	return nil
}
