package cmd

import (
	"context"
	"fmt"

	"github.com/agueijo/pathkit/internal/pathutil"
)

func (r *Router) handleNorm(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("norm: missing operand")
	}

	for _, arg := range args {
		r.Formatter.PrintPath(pathutil.Join(pathutil.Normalize(pathutil.Split(arg))))
	}
	return nil
}
