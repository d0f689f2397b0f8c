package cmd

import (
	"context"
	"fmt"

	"github.com/agueijo/pathkit/internal/fsops"
)

func (r *Router) handleBasename(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("basename: missing operand")
	}

	for _, arg := range args {
		r.Formatter.PrintPath(fsops.BaseName(arg))
	}
	return nil
}

func (r *Router) handleDirname(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("dirname: missing operand")
	}

	for _, arg := range args {
		r.Formatter.PrintPath(fsops.DirName(arg))
	}
	return nil
}
