package cmd

import (
	"context"
	"fmt"

	"github.com/agueijo/pathkit/internal/fsops"
)

func (r *Router) handleReadlink(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("readlink: missing operand")
	}

	for _, arg := range args {
		path := r.ResolvePath(arg)
		target, err := fsops.ReadLink(path)
		if err != nil {
			return fmt.Errorf("readlink: %w", err)
		}
		r.Formatter.PrintPath(target)
	}
	return nil
}
