package cmd

import (
	"context"
	"fmt"

	"github.com/agueijo/pathkit/internal/fsops"
)

func (r *Router) handleStat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("stat: missing operand")
	}

	for _, arg := range args {
		path := r.ResolvePath(arg)
		info, err := fsops.Stat(path)
		if err != nil {
			return fmt.Errorf("stat: cannot stat '%s': %w", path, err)
		}
		r.Formatter.PrintStat(info)
	}
	return nil
}
